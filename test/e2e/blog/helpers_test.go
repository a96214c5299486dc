package blog_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/inkwelldev/inkwell/pkg/blogsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for blog service end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "inkwell-blog-test:latest"

	testJWTSecret = "e2e-signing-secret-not-for-production"
	testPassword  = "Str0ng!pass"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Blog Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Blog Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/blog/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupBlogContainer starts the blog service in a container and returns the
// base URL. Rate limits are raised well above the production defaults so
// rapid test requests never trip them.
func setupBlogContainer(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	})
}

// setupBlogContainerWithDefaultRateLimits starts the blog service with the
// production rate limits. Only the rate limiting tests should use this.
func setupBlogContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, nil)
}

func startContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"BLOG_JWT_SECRET":    testJWTSecret,
		"BLOG_ISSUER":        "inkwell-e2e",
		"BLOG_DATABASE_FILE": "/tmp/blog.db",
		"ENV":                "test",
		"LOG_LEVEL":          "info",
		"LOG_FORMAT":         "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/health").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerUser creates a fresh account and returns its logged-in session.
// The email is derived from the username.
func registerUser(t *testing.T, client *blogsdk.Client, username string) *blogsdk.Session {
	t.Helper()

	session, err := client.Register(t.Context(), username, username+"@example.com", testPassword)
	require.NoError(t, err, "Register should succeed")
	require.NotNil(t, session)

	assertSessionTokens(t, session)
	return session
}

// assertSessionTokens verifies a session carries a usable token pair.
func assertSessionTokens(t *testing.T, session *blogsdk.Session) {
	t.Helper()
	require.NotEmpty(t, session.AccessToken(), "Access token should not be empty")
	require.NotEmpty(t, session.RefreshToken(), "Refresh token should not be empty")
}

// assertUnauthorized checks that an error is a 401 from the service.
func assertUnauthorized(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.True(t, blogsdk.IsUnauthorized(err),
		"%s - error should indicate unauthorized access, got: %s", context, err.Error())
}

// assertForbidden checks that an error is a 403 from the service.
func assertForbidden(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.True(t, blogsdk.IsForbidden(err),
		"%s - error should indicate forbidden access, got: %s", context, err.Error())
}

// assertValidationError checks that an error is a 400 mentioning the field.
func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*blogsdk.APIError)
	require.True(t, ok, "error should be an APIError, got: %v", err)
	require.Equal(t, 400, apiErr.StatusCode)
	require.True(t, strings.Contains(apiErr.Message, field),
		"error should mention %q, got: %s", field, apiErr.Message)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health blogsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, "healthy", health.Status)
}
