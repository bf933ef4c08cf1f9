package secure

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	apperrors "news-portal-backend/internal/errors"
)

const (
	// encPrefix marks an encrypted value and leaves room for future versions
	encPrefix   = "enc:v1:"
	gcmNonceLen = 12
)

// TokenCipher encrypts the upstream API key before it is written to a shared cache store.
// A nil *TokenCipher stores values as-is.
type TokenCipher struct {
	aead cipher.AEAD
}

// NewTokenCipher builds a cipher from a base64 encoded 32-byte secret (openssl rand -base64 32).
// An empty secret disables encryption and returns nil.
func NewTokenCipher(base64Secret string) (*TokenCipher, error) {
	secret := strings.TrimSpace(base64Secret)
	if secret == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(secret)
	if err != nil || len(raw) != 32 {
		return nil, apperrors.ErrInvalidTokenSecret
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &TokenCipher{aead: gcm}, nil
}

// Enabled reports whether values are encrypted
func (c *TokenCipher) Enabled() bool {
	return c != nil
}

// Seal encrypts plaintext as "enc:v1:" + base64(nonce || ciphertext)
func (c *TokenCipher) Seal(plaintext string) (string, error) {
	if c == nil {
		return plaintext, nil
	}

	nonce := make([]byte, gcmNonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	combined := append(nonce, ciphertext...)
	return encPrefix + base64.StdEncoding.EncodeToString(combined), nil
}

// Open decrypts a value produced by Seal. With encryption enabled, values without
// the prefix are rejected.
func (c *TokenCipher) Open(s string) (string, error) {
	if c == nil {
		return s, nil
	}

	if len(s) < len(encPrefix) || subtle.ConstantTimeCompare([]byte(s[:len(encPrefix)]), []byte(encPrefix)) != 1 {
		return "", errors.New("value is not encrypted (missing " + encPrefix + " prefix)")
	}

	combined, err := base64.StdEncoding.DecodeString(s[len(encPrefix):])
	if err != nil {
		return "", errors.New("failed to base64 decode encrypted value")
	}
	if len(combined) < gcmNonceLen {
		return "", errors.New("invalid encrypted payload")
	}

	plain, err := c.aead.Open(nil, combined[:gcmNonceLen], combined[gcmNonceLen:], nil)
	if err != nil {
		return "", errors.New("failed to decrypt value")
	}
	return string(plain), nil
}
