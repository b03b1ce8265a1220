package model

import (
	"bytes"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/pkg/nsid"
)

// PayloadKind discriminates the anchor types carried in an OP_RETURN output.
type PayloadKind byte

const (
	KindCreate   PayloadKind = 0x00
	KindTransfer PayloadKind = 0x01
)

// PayloadLen is the exact wire length: magic(3) + version(1) + kind(1) + nsid(20).
const PayloadLen = 25

// magic is the protocol tag plus version byte.
var magic = []byte{'N', 'O', 'M', 0x00}

const opReturn = 0x6a

// Payload is a decoded name anchor.
type Payload struct {
	Kind PayloadKind
	Nsid nsid.Nsid
}

// Bytes encodes the payload to its 25-byte wire form.
func (p *Payload) Bytes() []byte {
	b := make([]byte, 0, PayloadLen)
	b = append(b, magic...)
	b = append(b, byte(p.Kind))
	b = append(b, p.Nsid.Bytes()...)

	return b
}

// ParsePayload decodes a 25-byte OP_RETURN data push. It returns (nil, nil)
// when the data does not carry the protocol magic, and an error when the
// magic matches but the rest is malformed.
func ParsePayload(data []byte) (*Payload, error) {
	if len(data) < len(magic) || !bytes.Equal(data[:len(magic)], magic) {
		return nil, nil
	}

	if len(data) != PayloadLen {
		return nil, errors.NewProcessingError("anchor payload must be %d bytes, got %d", PayloadLen, len(data))
	}

	kind := PayloadKind(data[4])
	if kind != KindCreate && kind != KindTransfer {
		return nil, errors.NewProcessingError("unknown anchor kind 0x%02x", data[4])
	}

	id, err := nsid.FromBytes(data[5:])
	if err != nil {
		return nil, errors.NewProcessingError("invalid anchor nsid", err)
	}

	return &Payload{Kind: kind, Nsid: id}, nil
}

// ParseOPReturnScript decodes a raw output script. Only the canonical form
// OP_RETURN <push 25 bytes> is recognized; anything else returns (nil, nil)
// unless the payload carries the magic and is malformed.
func ParseOPReturnScript(script []byte) (*Payload, error) {
	if len(script) < 2 || script[0] != opReturn {
		return nil, nil
	}

	// single-byte push opcode; OP_RETURN data pushes above 75 bytes never
	// carry a name anchor
	pushLen := int(script[1])
	if pushLen > 75 || len(script) != 2+pushLen {
		return nil, nil
	}

	return ParsePayload(script[2:])
}
