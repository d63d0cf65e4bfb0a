package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	for _, password := range []string{"Pw123456", "x", "пароль-с-юникодом"} {
		hash, err := h.Hash(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hash)

		ok, err := h.Verify(password, hash)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = h.Verify(password+"!", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestPasswordHasher_Salted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("Pw123456")
	require.NoError(t, err)
	second, err := h.Hash("Pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_EmptyInput(t *testing.T) {
	_, err := NewPasswordHasher(bcrypt.MinCost).Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	ok, err := NewPasswordHasher(bcrypt.MinCost).Verify("Pw123456", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMalformedHash)
}

func TestNewPasswordHasher_CostFallback(t *testing.T) {
	h := NewPasswordHasher(0).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewPasswordHasher(bcrypt.MaxCost + 1).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
