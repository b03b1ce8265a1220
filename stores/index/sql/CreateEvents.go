package sql

import (
	"context"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/model"
)

func (s *SQL) LastCreateEventTime(ctx context.Context) (int64, error) {
	q := `SELECT COALESCE(MAX(created_at), 0) FROM create_events`

	var t int64
	if err := s.db.QueryRowContext(ctx, q).Scan(&t); err != nil {
		return 0, errors.NewStorageError("failed to read last create event time", err)
	}

	return t, nil
}

// InsertCreateEvent stores a validated create event. A second claim for the
// same nsid is silently ignored regardless of created_at.
func (s *SQL) InsertCreateEvent(ctx context.Context, event *model.CreateEvent) error {
	q := `
		INSERT INTO create_events (nsid, pubkey, created_at, event_id, name, children)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (nsid) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, q,
		event.Nsid,
		event.Pubkey,
		event.CreatedAt,
		event.EventID,
		event.Name,
		event.Children,
	); err != nil {
		return errors.NewStorageError("failed to insert create event %s", event.EventID, err)
	}

	return nil
}

func (s *SQL) IndexNameNsid(ctx context.Context, name, nsid, root string, parent *string, pubkey string) error {
	q := `
		INSERT INTO name_nsid (name, nsid, root, parent, pubkey)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, q, name, nsid, root, parent, pubkey); err != nil {
		return errors.NewStorageError("failed to index name %s", name, err)
	}

	return nil
}
