package nsid

import (
	"github.com/melvincarvalho/nomen/errors"
)

// Builder accumulates the hash input for a namespace identifier. The input
// starts with name || owner and is extended by each child's name || pubkey in
// insertion order.
type Builder struct {
	buf []byte
	err error
}

// NewBuilder starts a builder for name owned by the x-only pubkey owner.
func NewBuilder(name string, owner []byte) *Builder {
	b := &Builder{}

	if err := ValidateName(name); err != nil {
		b.err = err
		return b
	}

	if len(owner) != PubKeySize {
		b.err = errors.ErrInvalidKey
		return b
	}

	b.buf = append(b.buf, name...)
	b.buf = append(b.buf, owner...)

	return b
}

// Child folds a child (name, pubkey) pair into the hash input. Order matters
// and is preserved.
func (b *Builder) Child(name string, pubkey []byte) *Builder {
	if b.err != nil {
		return b
	}

	if err := ValidateName(name); err != nil {
		b.err = err
		return b
	}

	if len(pubkey) != PubKeySize {
		b.err = errors.ErrInvalidKey
		return b
	}

	b.buf = append(b.buf, name...)
	b.buf = append(b.buf, pubkey...)

	return b
}

// Finalize emits the 20-byte identifier, or the first error the builder hit.
func (b *Builder) Finalize() (Nsid, error) {
	if b.err != nil {
		return Nsid{}, b.err
	}

	return FromBytes(Hash160(b.buf))
}
