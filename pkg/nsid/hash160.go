package nsid

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // protocol-mandated digest
)

// Hash160 computes RIPEMD160(SHA-256(data)).
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)

	h := ripemd160.New()
	h.Write(sha[:])

	return h.Sum(nil)
}
