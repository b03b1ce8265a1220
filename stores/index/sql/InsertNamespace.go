package sql

import (
	"context"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/model"
)

// InsertNamespace writes the on-chain anchor for an nsid. The conflict clause
// makes replays and competing later anchors no-ops, which is what gives
// first-writer-wins its determinism.
func (s *SQL) InsertNamespace(ctx context.Context, anchor *model.NamespaceAnchor) error {
	q := `
		INSERT INTO blockchain (nsid, blockhash, txid, vout, height)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (nsid) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, q,
		anchor.Nsid,
		anchor.Blockhash,
		anchor.Txid,
		anchor.Vout,
		anchor.Height,
	); err != nil {
		return errors.NewStorageError("failed to insert namespace %s", anchor.Nsid, err)
	}

	return nil
}
