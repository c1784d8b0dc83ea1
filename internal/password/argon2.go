// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	keyLen  uint32 = 32
	saltLen        = 16
)

// Params are the argon2id cost parameters used for new hashes.
type Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// argon2Hasher is the private implementation of [Hasher].
type argon2Hasher struct {
	params Params
	rand   io.Reader
}

// NewArgon2Hasher constructs a [Hasher] producing argon2id hashes with the
// given cost. Zero fields are rejected with ErrInvalidParams.
func NewArgon2Hasher(params Params) (Hasher, error) {
	if params.Time == 0 || params.MemoryKiB == 0 || params.Threads == 0 {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidParams, params)
	}

	return &argon2Hasher{
		params: params,
		rand:   rand.Reader,
	}, nil
}

// Hash implements [Hasher].
func (h *argon2Hasher) Hash(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerateSalt, err)
	}

	key := argon2.IDKey([]byte(plain), salt, h.params.Time, h.params.MemoryKiB, h.params.Threads, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.params.MemoryKiB,
		h.params.Time,
		h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify implements [Hasher]. The comparison runs in constant time.
func (h *argon2Hasher) Verify(plain, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrInvalidHash
	}

	version, err := parseVersion(parts[2])
	if err != nil || version != argon2.Version {
		return false, ErrInvalidHash
	}

	params, err := parseParams(parts[3])
	if err != nil {
		return false, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrInvalidHash
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 {
		return false, ErrInvalidHash
	}

	actual := argon2.IDKey([]byte(plain), salt, params.Time, params.MemoryKiB, params.Threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(actual, expected) == 1, nil
}

func parseVersion(value string) (int, error) {
	v, ok := strings.CutPrefix(value, "v=")
	if !ok {
		return 0, ErrInvalidHash
	}

	return strconv.Atoi(v)
}

func parseParams(value string) (Params, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return Params{}, ErrInvalidHash
	}

	mem, err := parseUint(parts[0], "m=", 32)
	if err != nil {
		return Params{}, err
	}
	t, err := parseUint(parts[1], "t=", 32)
	if err != nil {
		return Params{}, err
	}
	p, err := parseUint(parts[2], "p=", 8)
	if err != nil {
		return Params{}, err
	}
	if mem == 0 || t == 0 || p == 0 {
		return Params{}, ErrInvalidHash
	}

	return Params{Time: uint32(t), MemoryKiB: uint32(mem), Threads: uint8(p)}, nil
}

func parseUint(value, prefix string, bits int) (uint64, error) {
	v, ok := strings.CutPrefix(value, prefix)
	if !ok {
		return 0, ErrInvalidHash
	}

	parsed, err := strconv.ParseUint(v, 10, bits)
	if err != nil {
		return 0, ErrInvalidHash
	}

	return parsed, nil
}
