package sql

import (
	"context"
	"testing"

	"github.com/melvincarvalho/nomen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_InsertNamespace(t *testing.T) {
	ctx := context.Background()

	t.Run("first observation wins", func(t *testing.T) {
		s := newTestStore(t)

		first := testAnchor("aabb", 5)
		require.NoError(t, s.InsertNamespace(ctx, first))

		// a competing anchor at a later height must be absorbed silently
		second := &model.NamespaceAnchor{
			Nsid:      "aabb",
			Blockhash: "otherhash",
			Txid:      "othertxid",
			Vout:      0,
			Height:    9,
		}
		require.NoError(t, s.InsertNamespace(ctx, second))

		var (
			blockhash string
			txid      string
			vout      uint32
			height    uint64
		)
		require.NoError(t, s.db.QueryRow(`SELECT blockhash, txid, vout, height FROM blockchain WHERE nsid = $1`, "aabb").
			Scan(&blockhash, &txid, &vout, &height))

		assert.Equal(t, first.Blockhash, blockhash)
		assert.Equal(t, first.Txid, txid)
		assert.Equal(t, first.Vout, vout)
		assert.Equal(t, first.Height, height)
	})

	t.Run("replay is byte identical", func(t *testing.T) {
		s := newTestStore(t)

		anchor := testAnchor("ccdd", 7)
		require.NoError(t, s.InsertNamespace(ctx, anchor))
		require.NoError(t, s.InsertNamespace(ctx, anchor))

		var count int64
		require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM blockchain`).Scan(&count))
		assert.Equal(t, int64(1), count)
	})

	t.Run("membership check", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.InsertNamespace(ctx, testAnchor("eeff", 1)))

		exists, err := s.NamespaceExists(ctx, "eeff")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = s.NamespaceExists(ctx, "0011")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
