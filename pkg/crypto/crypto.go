package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

const (
	encryptionInfo = "go4it/aes-gcm/v1"
	signingInfo    = "go4it/hmac/v1"
)

// deriveKey expands the configured secret into a purpose specific 32 byte key
func deriveKey(secret, info string) ([]byte, error) {
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))
	key := make([]byte, 32)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}

// ComputeHMAC256 returns the hex encoded HMAC-SHA256 of data
func ComputeHMAC256(data []byte, secret string) string {
	key, err := deriveKey(secret, signingInfo)
	if err != nil {
		key = []byte(secret)
	}
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyHMAC compares in constant time
func VerifyHMAC(data []byte, signature, secret string) bool {
	expected := ComputeHMAC256(data, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// HashMagicCode hashes a sign-in code so it is never stored in clear
func HashMagicCode(code, secret string) string {
	return ComputeHMAC256([]byte(code), secret)
}

// VerifyMagicCode checks a submitted code against its stored hash
func VerifyMagicCode(code, storedHash, secret string) bool {
	if storedHash == "" {
		return false
	}
	return VerifyHMAC([]byte(code), storedHash, secret)
}

// GenerateNumericCode returns a uniformly random code of the given number of digits
func GenerateNumericCode(digits int) (string, error) {
	if digits <= 0 || digits > 18 {
		return "", fmt.Errorf("invalid code length %d", digits)
	}
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n.Int64()), nil
}

// EncryptString seals plaintext with AES-256-GCM and returns nonce||ciphertext as hex
func EncryptString(plaintext, secret string) (string, error) {
	gcm, err := newGCM(secret)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// DecryptString reverses EncryptString
func DecryptString(encoded, secret string) (string, error) {
	if encoded == "" {
		return "", fmt.Errorf("nothing to decrypt")
	}

	data, err := hex.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	gcm, err := newGCM(secret)
	if err != nil {
		return "", err
	}

	if len(data) < gcm.NonceSize() {
		return "", fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plaintext), nil
}

func newGCM(secret string) (cipher.AEAD, error) {
	key, err := deriveKey(secret, encryptionInfo)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcm: %w", err)
	}
	return gcm, nil
}
