package password_test

import (
	"strings"
	"testing"

	"rentacar/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("cliente1234")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %s", hash)

	assert.NoError(t, password.Verify("cliente1234", hash))
	assert.ErrorIs(t, password.Verify("otra-clave", hash), password.ErrInvalidPassword)
}

func TestHashErrors(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)

	// bcrypt rejects inputs over 72 bytes
	_, err = password.Hash(strings.Repeat("a", 100))
	assert.ErrorIs(t, err, password.ErrHashingPassword)
}

func TestVerifyErrors(t *testing.T) {
	hash, err := password.Hash("cliente1234")
	require.NoError(t, err)

	assert.ErrorIs(t, password.Verify("", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("cliente1234", ""), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("cliente1234", "not-a-bcrypt-hash"), password.ErrVerifyingPassword)
	assert.ErrorIs(t, password.Verify("cliente1234", hash[:10]), password.ErrVerifyingPassword)
}
