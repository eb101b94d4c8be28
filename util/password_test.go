package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	password := RandomString(8)

	hash, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, password, hash)

	require.NoError(t, CheckPasswordHash(password, hash))
	require.ErrorIs(t, CheckPasswordHash(RandomString(8)+"x", hash), ErrPasswordMismatch)
	require.Error(t, CheckPasswordHash(password, "not-a-bcrypt-hash"))

	// Same password, different salt.
	hash2, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)
}

func TestPtr(t *testing.T) {
	p := Ptr(7)
	require.Equal(t, 7, *p)

	*p = 8
	require.Equal(t, 8, *Ptr(8))
}
