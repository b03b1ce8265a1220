package sql

import (
	"context"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/model"
)

func (s *SQL) LastRecordsTime(ctx context.Context) (int64, error) {
	q := `SELECT COALESCE(MAX(created_at), 0) FROM records_events`

	var t int64
	if err := s.db.QueryRowContext(ctx, q).Scan(&t); err != nil {
		return 0, errors.NewStorageError("failed to read last records event time", err)
	}

	return t, nil
}

// InsertRecordsEvent upserts by (nsid, pubkey). The WHERE clause on the
// conflict update keeps the stored row when the incoming created_at is not
// strictly newer, so replays and stale deliveries are no-ops.
func (s *SQL) InsertRecordsEvent(ctx context.Context, event *model.RecordsEvent) error {
	q := `
		INSERT INTO records_events (nsid, pubkey, created_at, event_id, name, records)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (nsid, pubkey) DO UPDATE SET
			 created_at = excluded.created_at
			,event_id = excluded.event_id
			,name = excluded.name
			,records = excluded.records
		WHERE excluded.created_at > records_events.created_at
	`

	if _, err := s.db.ExecContext(ctx, q,
		event.Nsid,
		event.Pubkey,
		event.CreatedAt,
		event.EventID,
		event.Name,
		event.Records,
	); err != nil {
		return errors.NewStorageError("failed to upsert records event %s", event.EventID, err)
	}

	return nil
}
