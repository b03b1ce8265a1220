package sql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/stores/index"
)

// NameRecords returns the records map for a resolvable name. A name with no
// anchor, no create event or no records event has no row in the view and
// resolves to index.ErrNotFound.
func (s *SQL) NameRecords(ctx context.Context, name string) (map[string]string, error) {
	q := `SELECT records FROM name_records_vw WHERE name = $1`

	var raw string
	if err := s.db.QueryRowContext(ctx, q, name).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, index.ErrNotFound
		}

		return nil, errors.NewStorageError("failed to look up records for %s", name, err)
	}

	var records map[string]string
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, errors.NewStorageError("corrupt records for %s", name, err)
	}

	return records, nil
}
