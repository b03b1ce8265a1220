// Package nsid implements the namespace identifier algebra. An Nsid binds a
// name to an owner public key through Hash160 and is the join key between the
// on-chain anchor and the Nostr events that expand it.
package nsid

import (
	"bytes"
	"encoding/hex"

	"github.com/melvincarvalho/nomen/errors"
)

// Size is the byte length of a namespace identifier.
const Size = 20

// PubKeySize is the byte length of an x-only secp256k1 public key.
const PubKeySize = 32

// Nsid is a 20-byte namespace identifier.
type Nsid [Size]byte

// FromBytes converts b into an Nsid. b must be exactly Size bytes.
func FromBytes(b []byte) (Nsid, error) {
	var n Nsid
	if len(b) != Size {
		return n, errors.NewInvalidArgumentError("nsid must be %d bytes, got %d", Size, len(b))
	}

	copy(n[:], b)

	return n, nil
}

// FromString converts a hex string into an Nsid.
func FromString(s string) (Nsid, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Nsid{}, errors.NewInvalidArgumentError("invalid nsid hex", err)
	}

	return FromBytes(b)
}

func (n Nsid) String() string {
	return hex.EncodeToString(n[:])
}

func (n Nsid) Bytes() []byte {
	return n[:]
}

func (n Nsid) Equal(other Nsid) bool {
	return bytes.Equal(n[:], other[:])
}

// New computes the namespace identifier for a top-level name:
// Hash160(name || pubkey).
func New(name string, pubkey []byte) (Nsid, error) {
	return NewBuilder(name, pubkey).Finalize()
}
