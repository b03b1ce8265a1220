package sql

import (
	"context"

	"github.com/melvincarvalho/nomen/errors"
)

func (s *SQL) NameAvailable(ctx context.Context, name string) (bool, error) {
	q := `SELECT COUNT(*) FROM create_events WHERE name = $1`

	var count int64
	if err := s.db.QueryRowContext(ctx, q, name).Scan(&count); err != nil {
		return false, errors.NewStorageError("failed to check name %s", name, err)
	}

	return count == 0, nil
}
