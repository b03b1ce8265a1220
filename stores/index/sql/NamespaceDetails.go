package sql

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/model"
)

func (s *SQL) NamespaceDetails(ctx context.Context, nsid string) (*model.NamespaceDetails, error) {
	name, err := s.nameForNsid(ctx, nsid)
	if err != nil {
		return nil, err
	}

	records, err := s.recordsForNsid(ctx, nsid)
	if err != nil {
		return nil, err
	}

	children, err := s.childrenForNsid(ctx, nsid)
	if err != nil {
		return nil, err
	}

	blockdata, err := s.blockdataForNsid(ctx, nsid)
	if err != nil {
		return nil, err
	}

	return &model.NamespaceDetails{
		Name:      name,
		Records:   records,
		Children:  children,
		Blockdata: blockdata,
	}, nil
}

func (s *SQL) nameForNsid(ctx context.Context, nsid string) (*string, error) {
	q := `SELECT name FROM name_nsid WHERE nsid = $1 LIMIT 1`

	var name string
	if err := s.db.QueryRowContext(ctx, q, nsid).Scan(&name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, errors.NewStorageError("failed to look up name for %s", nsid, err)
	}

	return &name, nil
}

func (s *SQL) recordsForNsid(ctx context.Context, nsid string) (map[string]string, error) {
	q := `SELECT records FROM name_records_vw WHERE nsid = $1`

	raw := "{}"
	if err := s.db.QueryRowContext(ctx, q, nsid).Scan(&raw); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewStorageError("failed to look up records for %s", nsid, err)
	}

	var records map[string]string
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, errors.NewStorageError("corrupt records for %s", nsid, err)
	}

	return records, nil
}

func (s *SQL) childrenForNsid(ctx context.Context, nsid string) ([]model.NameEntry, error) {
	q := `SELECT name, nsid FROM name_nsid WHERE parent = $1 ORDER BY name`

	rows, err := s.db.QueryContext(ctx, q, nsid)
	if err != nil {
		return nil, errors.NewStorageError("failed to list children of %s", nsid, err)
	}
	defer rows.Close()

	var children []model.NameEntry

	for rows.Next() {
		var entry model.NameEntry
		if err = rows.Scan(&entry.Name, &entry.Nsid); err != nil {
			return nil, errors.NewStorageError("failed to scan child of %s", nsid, err)
		}

		children = append(children, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.NewStorageError("failed to read children of %s", nsid, err)
	}

	return children, nil
}

func (s *SQL) blockdataForNsid(ctx context.Context, nsid string) (*model.Blockdata, error) {
	q := `SELECT blockhash, txid, vout, height FROM blockchain WHERE nsid = $1`

	var bd model.Blockdata
	if err := s.db.QueryRowContext(ctx, q, nsid).Scan(&bd.Blockhash, &bd.Txid, &bd.Vout, &bd.Height); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, errors.NewStorageError("failed to look up blockdata for %s", nsid, err)
	}

	return &bd, nil
}
