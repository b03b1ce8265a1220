package nsid

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPubkey = mustHex("d57ffca4e2a6e20c8c1b6f1e8f2f4c3b5a69788796a5b4c3d2e1f00112233445")

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestHash160(t *testing.T) {
	t.Run("known vector", func(t *testing.T) {
		// RIPEMD160(SHA-256("")), the well-known Hash160 of empty input
		assert.Equal(t, "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb", hex.EncodeToString(Hash160(nil)))
	})

	t.Run("deterministic and 20 bytes", func(t *testing.T) {
		a := Hash160([]byte("alice"))
		b := Hash160([]byte("alice"))

		assert.Equal(t, a, b)
		assert.Len(t, a, Size)
	})
}

func TestNew(t *testing.T) {
	t.Run("equals hash160 of name and pubkey", func(t *testing.T) {
		id, err := New("alice", testPubkey)
		require.NoError(t, err)

		input := append([]byte("alice"), testPubkey...)
		assert.Equal(t, Hash160(input), id.Bytes())
		assert.Len(t, id.Bytes(), Size)
	})

	t.Run("rejects short pubkey", func(t *testing.T) {
		_, err := New("alice", testPubkey[:16])
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidKey))
	})
}

func TestValidateName(t *testing.T) {
	t.Run("length bounds", func(t *testing.T) {
		assert.Error(t, ValidateName("ab"))
		assert.NoError(t, ValidateName("abc"))
		assert.NoError(t, ValidateName(strings.Repeat("a", 43)))
		assert.Error(t, ValidateName(strings.Repeat("a", 44)))
	})

	t.Run("charset", func(t *testing.T) {
		assert.NoError(t, ValidateName("alice-01"))
		assert.Error(t, ValidateName("Alice"))
		assert.Error(t, ValidateName("al_ce"))
		assert.Error(t, ValidateName("al.ce"))
		assert.Error(t, ValidateName("ali ce"))
	})
}

func TestBuilder(t *testing.T) {
	t.Run("no children equals New", func(t *testing.T) {
		fromBuilder, err := NewBuilder("alice", testPubkey).Finalize()
		require.NoError(t, err)

		direct, err := New("alice", testPubkey)
		require.NoError(t, err)

		assert.Equal(t, direct, fromBuilder)
	})

	t.Run("children extend the input in order", func(t *testing.T) {
		child := mustHex("00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff")

		id, err := NewBuilder("alice", testPubkey).
			Child("mail", child).
			Child("web", child).
			Finalize()
		require.NoError(t, err)

		input := append([]byte("alice"), testPubkey...)
		input = append(input, []byte("mail")...)
		input = append(input, child...)
		input = append(input, []byte("web")...)
		input = append(input, child...)

		assert.Equal(t, Hash160(input), id.Bytes())

		// a different fold order is a different identifier
		swapped, err := NewBuilder("alice", testPubkey).
			Child("web", child).
			Child("mail", child).
			Finalize()
		require.NoError(t, err)
		assert.NotEqual(t, id, swapped)
	})

	t.Run("invalid name surfaces at finalize", func(t *testing.T) {
		_, err := NewBuilder("xy", testPubkey).Finalize()
		assert.True(t, errors.Is(err, errors.ErrInvalidName))

		_, err = NewBuilder("alice", testPubkey).Child("??", testPubkey).Finalize()
		assert.True(t, errors.Is(err, errors.ErrInvalidName))
	})
}

func TestFromString(t *testing.T) {
	id, err := New("alice", testPubkey)
	require.NoError(t, err)

	parsed, err := FromString(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = FromString("zz")
	assert.Error(t, err)

	_, err = FromString("00112233")
	assert.Error(t, err)
}
