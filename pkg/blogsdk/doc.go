// Package blogsdk is a Go client for the Inkwell blog API.
//
// The SDK has two layers:
//
//   - Client: unauthenticated operations (register, login, public reads).
//   - Session: an authenticated client bound to one account, created via
//     Client.Register or Client.Login. Sessions refresh their access token
//     automatically when it nears expiry.
//
// The same response types are used by the server handlers, so the SDK is
// always in lockstep with the wire format.
package blogsdk
