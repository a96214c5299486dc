package cryptox

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(MinCost)

	hash, err := h.Hash("Str0ng!pw")
	require.NoError(t, err)
	require.NotEqual(t, "Str0ng!pw", hash)

	require.NoError(t, h.Verify("Str0ng!pw", hash))
	require.ErrorIs(t, h.Verify("wrong-password", hash), ErrMismatch)
}

func TestHashSaltsDiffer(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(MinCost)

	first, err := h.Hash("Str0ng!pw")
	require.NoError(t, err)
	second, err := h.Hash("Str0ng!pw")
	require.NoError(t, err)

	// Fresh salt per call, yet both hashes verify.
	require.NotEqual(t, first, second)
	require.NoError(t, h.Verify("Str0ng!pw", first))
	require.NoError(t, h.Verify("Str0ng!pw", second))
}

func TestVerifyCorruptHashIsMismatch(t *testing.T) {
	t.Parallel()

	h := NewPasswordHasher(MinCost)

	for _, corrupt := range []string{"", "not-a-bcrypt-hash", "$2a$banana"} {
		require.ErrorIs(t, h.Verify("Str0ng!pw", corrupt), ErrMismatch)
	}
}

func TestCostClamping(t *testing.T) {
	t.Parallel()

	require.Equal(t, bcrypt.MinCost, NewPasswordHasher(-1).Cost())
	require.Equal(t, bcrypt.MaxCost, NewPasswordHasher(99).Cost())
	require.Equal(t, DefaultCost, NewPasswordHasher(DefaultCost).Cost())
}
