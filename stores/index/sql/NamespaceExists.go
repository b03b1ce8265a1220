package sql

import (
	"context"

	"github.com/melvincarvalho/nomen/errors"
)

func (s *SQL) NamespaceExists(ctx context.Context, nsid string) (bool, error) {
	q := `SELECT COUNT(*) FROM blockchain WHERE nsid = $1`

	var count int64
	if err := s.db.QueryRowContext(ctx, q, nsid).Scan(&count); err != nil {
		return false, errors.NewStorageError("failed to check namespace %s", nsid, err)
	}

	return count > 0, nil
}
