package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// BodySigner computes and checks HMAC-SHA256 signatures of request and
// response bodies (the HashSHA256 header). Hash instances are pooled, so a
// single BodySigner can be shared by all requests.
type BodySigner struct {
	pool sync.Pool
}

// NewBodySigner returns a signer keyed with hashKey. An empty key returns
// nil, which callers treat as "integrity checks disabled".
//
// Example usage:
//
//	signer := utils.NewBodySigner("my-secret-key")
//	req.Header.Set("HashSHA256", signer.Sign(body))
func NewBodySigner(hashKey string) *BodySigner {
	if hashKey == "" {
		return nil
	}

	key := []byte(hashKey)
	return &BodySigner{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (s *BodySigner) Sum(data []byte) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Sign returns the hex-encoded HMAC-SHA256 digest of data.
func (s *BodySigner) Sign(data []byte) string {
	return hex.EncodeToString(s.Sum(data))
}

// Verify reports whether signature is the hex-encoded digest of data.
// The comparison runs in constant time.
func (s *BodySigner) Verify(data []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(s.Sum(data), expected)
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// A new HMAC instance is created on each call. Suitable for one-off hashing.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
