package sql

import (
	"context"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/model"
)

func (s *SQL) TopLevelNames(ctx context.Context) ([]model.NameEntry, error) {
	q := `SELECT name, nsid FROM top_level_names_vw ORDER BY name`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, errors.NewStorageError("failed to list top level names", err)
	}
	defer rows.Close()

	var names []model.NameEntry

	for rows.Next() {
		var entry model.NameEntry
		if err = rows.Scan(&entry.Name, &entry.Nsid); err != nil {
			return nil, errors.NewStorageError("failed to scan top level name", err)
		}

		names = append(names, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.NewStorageError("failed to read top level names", err)
	}

	return names, nil
}
