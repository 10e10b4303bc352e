// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"soundem/config"
	"soundem/internal/domain/service"
	"soundem/internal/errors"
)

// Stored hash format:
//
//	$pbkdf2-sha256$<iterations>$<salt b64>$<digest b64>
//
// The algorithm tag and iteration count travel with every hash, so the
// configured work factor can be raised later while existing credentials
// keep verifying with the parameters they were created under.
const (
	pbkdf2AlgorithmTag = "pbkdf2-sha256"
	pbkdf2SaltLength   = 16
	pbkdf2KeyLength    = 32
)

var hashEncoding = base64.RawStdEncoding

// pbkdf2Hasher is a concrete implementation of the PasswordHasher
// interface using PBKDF2-SHA256.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	iterations := 0
	if cfg != nil && cfg.Auth != nil {
		iterations = cfg.Auth.PBKDF2Iterations
	}
	if iterations <= 0 {
		iterations = 29000
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Hash derives a salted digest from a plaintext password. A fresh random
// salt is drawn per call, so hashing the same password twice yields two
// different strings that both verify.
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}

	salt := make([]byte, pbkdf2SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, pbkdf2KeyLength, sha256.New)

	var b strings.Builder
	b.WriteByte('$')
	b.WriteString(pbkdf2AlgorithmTag)
	b.WriteByte('$')
	b.WriteString(strconv.Itoa(h.iterations))
	b.WriteByte('$')
	b.WriteString(hashEncoding.EncodeToString(salt))
	b.WriteByte('$')
	b.WriteString(hashEncoding.EncodeToString(key))

	return b.String(), nil
}

// Check recomputes the digest with the salt and iteration count embedded
// in the stored hash and compares in constant time. Any parse failure or
// mismatch yields false; Check never returns an error.
func (h *pbkdf2Hasher) Check(password, hash string) bool {
	iterations, salt, want, ok := parseHash(hash)
	if !ok {
		return false
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)

	return subtle.ConstantTimeCompare(got, want) == 1
}

func parseHash(hash string) (iterations int, salt, key []byte, ok bool) {
	parts := strings.Split(hash, "$")
	// Leading '$' yields an empty first element.
	if len(parts) != 5 || parts[0] != "" || parts[1] != pbkdf2AlgorithmTag {
		return 0, nil, nil, false
	}

	iterations, err := strconv.Atoi(parts[2])
	if err != nil || iterations <= 0 {
		return 0, nil, nil, false
	}

	salt, err = hashEncoding.DecodeString(parts[3])
	if err != nil || len(salt) == 0 {
		return 0, nil, nil, false
	}

	key, err = hashEncoding.DecodeString(parts[4])
	if err != nil || len(key) == 0 {
		return 0, nil, nil, false
	}

	return iterations, salt, key, true
}
