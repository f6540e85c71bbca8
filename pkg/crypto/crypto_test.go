package crypto

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	secret := "super-secret"

	sealed, err := EncryptString("ig-access-token", secret)
	require.NoError(t, err)
	assert.NotContains(t, sealed, "ig-access-token")

	again, err := EncryptString("ig-access-token", secret)
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce must make ciphertexts differ")

	plain, err := DecryptString(sealed, secret)
	require.NoError(t, err)
	assert.Equal(t, "ig-access-token", plain)

	_, err = DecryptString(sealed, "other-secret")
	assert.Error(t, err)
}

func TestDecryptString_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not hex", "zzzz"},
		{"too short", "abcd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecryptString(tt.input, "secret")
			assert.Error(t, err)
		})
	}
}

func TestHMAC(t *testing.T) {
	sig := ComputeHMAC256([]byte("payload"), "secret")
	assert.Len(t, sig, 64)
	assert.True(t, VerifyHMAC([]byte("payload"), sig, "secret"))
	assert.False(t, VerifyHMAC([]byte("payload!"), sig, "secret"))
	assert.False(t, VerifyHMAC([]byte("payload"), sig, "other"))
}

func TestMagicCode(t *testing.T) {
	hash := HashMagicCode("123456", "secret")
	assert.NotEqual(t, "123456", hash)
	assert.True(t, VerifyMagicCode("123456", hash, "secret"))
	assert.False(t, VerifyMagicCode("654321", hash, "secret"))
	assert.False(t, VerifyMagicCode("123456", "", "secret"))
}

func TestGenerateNumericCode(t *testing.T) {
	re := regexp.MustCompile(`^\d{6}$`)
	for i := 0; i < 50; i++ {
		code, err := GenerateNumericCode(6)
		require.NoError(t, err)
		assert.Regexp(t, re, code)
	}

	_, err := GenerateNumericCode(0)
	assert.Error(t, err)
}
