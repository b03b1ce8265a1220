package sql

import (
	"context"
	"database/sql"

	"github.com/melvincarvalho/nomen/errors"
)

func (s *SQL) NextIndexHeight(ctx context.Context, genesis uint64) (uint64, error) {
	q := `SELECT MAX(height) FROM blockchain`

	var max sql.NullInt64
	if err := s.db.QueryRowContext(ctx, q).Scan(&max); err != nil {
		return 0, errors.NewStorageError("failed to read max indexed height", err)
	}

	if !max.Valid {
		return genesis, nil
	}

	return uint64(max.Int64) + 1, nil
}
