package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm is returned when an algorithm name is not supported.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// Algorithm identifies a digest function.
type Algorithm string

const (
	MD2        Algorithm = "MD2"
	MD5        Algorithm = "MD5"
	SHA1       Algorithm = "SHA1"
	SHA256     Algorithm = "SHA256"
	SHA384     Algorithm = "SHA384"
	SHA512     Algorithm = "SHA512"
	SHA3_256   Algorithm = "SHA3_256"
	SHA3_512   Algorithm = "SHA3_512"
	BLAKE2B256 Algorithm = "BLAKE2B_256"
)

var constructors = map[Algorithm]func() hash.Hash{
	MD2:      NewMD2,
	MD5:      md5.New,
	SHA1:     sha1.New,
	SHA256:   sha256.New,
	SHA384:   sha512.New384,
	SHA512:   sha512.New,
	SHA3_256: sha3.New256,
	SHA3_512: sha3.New512,
	BLAKE2B256: func() hash.Hash {
		h, _ := blake2b.New256(nil) // only fails for oversized keys
		return h
	},
}

// Algorithms lists the supported algorithms in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{MD2, MD5, SHA1, SHA256, SHA384, SHA512, SHA3_256, SHA3_512, BLAKE2B256}
}

// Lookup resolves an algorithm name. Matching ignores case, dashes and
// underscores, so "sha-256", "SHA_256" and "sha256" are all SHA256.
func Lookup(name string) (Algorithm, error) {
	want := normalize(name)
	for _, alg := range Algorithms() {
		if normalize(string(alg)) == want {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func normalize(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "")
	return strings.ReplaceAll(name, "_", "")
}

// New returns a hash.Hash for alg.
func New(alg Algorithm) (hash.Hash, error) {
	ctor, ok := constructors[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
	return ctor(), nil
}

// Sum returns the lowercase hex digest of input under alg.
func Sum(alg Algorithm, input string) (string, error) {
	h, err := New(alg)
	if err != nil {
		return "", err
	}
	_, _ = h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil)), nil
}
