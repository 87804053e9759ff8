// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gatekeeper/config"
	"gatekeeper/internal/domain/service"
	"gatekeeper/internal/errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	argon2Algorithm = "argon2id"

	defaultArgon2Memory      uint32 = 19 * 1024
	defaultArgon2Iterations  uint32 = 2
	defaultArgon2Parallelism uint8  = 1
	defaultArgon2SaltLength  uint32 = 16
	defaultArgon2KeyLength   uint32 = 32

	// Bounds on parameters read back from stored digests.
	maxArgon2Memory     uint32 = 1 << 21
	maxArgon2Iterations uint32 = 64

	dummyPassword = "gatekeeper-dummy-password"
)

// Argon2Params are the argon2id cost parameters.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params returns the OWASP recommended minimum for argon2id.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Memory:      defaultArgon2Memory,
		Iterations:  defaultArgon2Iterations,
		Parallelism: defaultArgon2Parallelism,
		SaltLength:  defaultArgon2SaltLength,
		KeyLength:   defaultArgon2KeyLength,
	}
}

// argon2Hasher is a concrete implementation of the PasswordHasher interface using argon2id.
// Digests use the PHC string format; bcrypt digests from imported accounts are verified as well.
type argon2Hasher struct {
	params Argon2Params
	dummy  string
}

// NewArgon2Hasher builds the hasher from configuration, falling back to defaults for unset fields.
func NewArgon2Hasher(cfg *config.Config) (service.PasswordHasher, error) {
	params := DefaultArgon2Params()
	if h := cfg.Hashing; h != nil {
		if h.Memory != 0 {
			params.Memory = h.Memory
		}
		if h.Iterations != 0 {
			params.Iterations = h.Iterations
		}
		if h.Parallelism != 0 {
			params.Parallelism = h.Parallelism
		}
		if h.SaltLength != 0 {
			params.SaltLength = h.SaltLength
		}
		if h.KeyLength != 0 {
			params.KeyLength = h.KeyLength
		}
	}

	return NewArgon2HasherWithParams(params)
}

// NewArgon2HasherWithParams is the constructor for argon2Hasher.
// It precomputes the dummy digest used by CheckDummy.
func NewArgon2HasherWithParams(params Argon2Params) (service.PasswordHasher, error) {
	if params.Memory < 8 || params.Iterations < 1 || params.Parallelism < 1 {
		return nil, errors.New("argon2 parameters must be positive")
	}
	if params.SaltLength < 8 || params.KeyLength < 16 {
		return nil, errors.New("argon2 salt must be >= 8 bytes and key >= 16 bytes")
	}

	h := &argon2Hasher{params: params}

	dummy, err := h.Hash(dummyPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to precompute dummy digest")
	}
	h.dummy = dummy

	return h, nil
}

// Hash generates a salted argon2id digest encoded as a PHC string.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.params.Iterations, h.params.Memory, h.params.Parallelism, h.params.KeyLength)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Algorithm,
		argon2.Version,
		h.params.Memory,
		h.params.Iterations,
		h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Check recomputes the digest with the parameters embedded in hash and compares in constant time.
// Malformed digests never match.
func (h *argon2Hasher) Check(password, hash string) bool {
	if isBcryptDigest(hash) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	digest, err := parsePHC(hash)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), digest.salt, digest.iterations, digest.memory, digest.parallelism, uint32(len(digest.key)))

	return subtle.ConstantTimeCompare(computed, digest.key) == 1
}

// CheckDummy spends the same work as Check on a digest that never matches the caller's password.
func (h *argon2Hasher) CheckDummy(password string) bool {
	_ = h.Check(password, h.dummy)

	return false
}

func isBcryptDigest(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}

type phcDigest struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func parsePHC(encoded string) (*phcDigest, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, errors.New("invalid PHC format")
	}
	if parts[1] != argon2Algorithm {
		return nil, errors.Errorf("unsupported algorithm %q", parts[1])
	}
	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return nil, errors.New("unsupported argon2 version")
	}

	digest := &phcDigest{}
	for _, pair := range strings.Split(parts[3], ",") {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.New("invalid parameter entry")
		}

		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid parameter %s", name)
		}

		switch name {
		case "m":
			digest.memory = uint32(value)
		case "t":
			digest.iterations = uint32(value)
		case "p":
			if value > 255 {
				return nil, errors.New("parallelism out of range")
			}
			digest.parallelism = uint8(value)
		default:
			return nil, errors.Errorf("unsupported parameter %s", name)
		}
	}

	if digest.memory == 0 || digest.memory > maxArgon2Memory ||
		digest.iterations == 0 || digest.iterations > maxArgon2Iterations ||
		digest.parallelism == 0 {
		return nil, errors.New("argon2 parameters out of range")
	}

	var err error
	if digest.salt, err = decodePHCBase64(parts[4]); err != nil || len(digest.salt) == 0 {
		return nil, errors.New("invalid salt encoding")
	}
	if digest.key, err = decodePHCBase64(parts[5]); err != nil || len(digest.key) == 0 {
		return nil, errors.New("invalid hash encoding")
	}

	return digest, nil
}

// decodePHCBase64 accepts both the unpadded PHC encoding and padded standard base64.
func decodePHCBase64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
