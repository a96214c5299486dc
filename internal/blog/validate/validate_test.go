package validate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwelldev/inkwell/internal/blog/validate"
)

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()

	var fieldErr validate.FieldError
	require.ErrorAs(t, err, &fieldErr)
	require.Equal(t, field, fieldErr.Field)
}

func TestUsername(t *testing.T) {
	t.Run("lowercases valid names", func(t *testing.T) {
		got, err := validate.Username("Alice_99")
		require.NoError(t, err)
		require.Equal(t, "alice_99", got)
	})

	t.Run("rejects short and long names", func(t *testing.T) {
		_, err := validate.Username("ab")
		requireFieldError(t, err, "username")

		_, err = validate.Username(strings.Repeat("a", 51))
		requireFieldError(t, err, "username")
	})

	t.Run("rejects forbidden characters", func(t *testing.T) {
		for _, name := range []string{"has space", "has-dash", "has.dot", "émile"} {
			_, err := validate.Username(name)
			requireFieldError(t, err, "username")
		}
	})
}

func TestEmail(t *testing.T) {
	t.Run("lowercases valid addresses", func(t *testing.T) {
		got, err := validate.Email("Alice@Example.COM")
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", got)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, email := range []string{"", "plain", "no@tld", "two@@example.com", "spa ce@example.com"} {
			_, err := validate.Email(email)
			requireFieldError(t, err, "email")
		}
	})
}

func TestPassword(t *testing.T) {
	t.Run("accepts strong passwords", func(t *testing.T) {
		require.NoError(t, validate.Password("Str0ng!pass"))

		// Multibyte runes count as characters.
		require.NoError(t, validate.Password("Ünïc0de!pw"))
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		cases := map[string]string{
			"too short":  "S1!a",
			"no upper":   "weak1pass!",
			"no lower":   "WEAK1PASS!",
			"no digit":   "WeakPass!!",
			"no special": "WeakPass123",
		}
		for name, password := range cases {
			t.Run(name, func(t *testing.T) {
				requireFieldError(t, validate.Password(password), "password")
			})
		}
	})
}

func TestTitleAndContent(t *testing.T) {
	require.NoError(t, validate.Title("A title"))
	requireFieldError(t, validate.Title(""), "title")
	requireFieldError(t, validate.Title(strings.Repeat("x", 201)), "title")

	require.NoError(t, validate.Content("long enough content"))
	requireFieldError(t, validate.Content("too short"), "content")

	t.Run("lengths count runes, not bytes", func(t *testing.T) {
		// 150 CJK runes is 450 bytes but still a valid title.
		require.NoError(t, validate.Title(strings.Repeat("博", 150)))
		requireFieldError(t, validate.Title(strings.Repeat("博", 201)), "title")

		// 10 runes of content, regardless of encoding width.
		require.NoError(t, validate.Content(strings.Repeat("ü", 10)))
		requireFieldError(t, validate.Content(strings.Repeat("ü", 9)), "content")
	})
}

func TestPagination(t *testing.T) {
	require.NoError(t, validate.Pagination(1, 1))
	require.NoError(t, validate.Pagination(5, 100))

	t.Run("rejects instead of clamping", func(t *testing.T) {
		requireFieldError(t, validate.Pagination(0, 10), "page")
		requireFieldError(t, validate.Pagination(-1, 10), "page")
		requireFieldError(t, validate.Pagination(1, 0), "per_page")
		requireFieldError(t, validate.Pagination(1, 101), "per_page")
	})

	t.Run("errors unwrap as FieldError", func(t *testing.T) {
		var fieldErr validate.FieldError
		require.True(t, errors.As(validate.Pagination(0, 10), &fieldErr))
	})
}
