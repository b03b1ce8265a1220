package sql

import (
	"context"
	"database/sql"

	"github.com/melvincarvalho/nomen/errors"
)

// migrations is append-only. The runner records each applied entry in the
// schema table and on startup applies only the tail beyond the highest
// recorded version. There is no rollback; a schema change is a new entry.
var migrations = []string{
	`CREATE TABLE blockchain (
		 nsid TEXT PRIMARY KEY
		,blockhash TEXT NOT NULL
		,txid TEXT NOT NULL
		,vout INTEGER NOT NULL
		,height BIGINT NOT NULL
	)`,
	`CREATE INDEX blockchain_height_idx ON blockchain (height)`,
	`CREATE TABLE name_nsid (
		 name TEXT PRIMARY KEY
		,nsid TEXT NOT NULL
		,root TEXT
		,parent TEXT
		,pubkey TEXT
	)`,
	`CREATE INDEX name_nsid_nsid_idx ON name_nsid (nsid)`,
	`CREATE INDEX name_nsid_parent_idx ON name_nsid (parent)`,
	`CREATE TABLE create_events (
		 nsid TEXT PRIMARY KEY
		,pubkey TEXT NOT NULL
		,created_at BIGINT NOT NULL
		,event_id TEXT NOT NULL
		,name TEXT NOT NULL
		,children TEXT NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE records_events (
		 nsid TEXT NOT NULL
		,pubkey TEXT NOT NULL
		,created_at BIGINT NOT NULL
		,event_id TEXT NOT NULL
		,name TEXT NOT NULL
		,records TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX records_events_unique_idx ON records_events (nsid, pubkey)`,
	`CREATE INDEX records_events_created_at_idx ON records_events (created_at)`,
	`CREATE VIEW name_records_vw AS
		SELECT re.name, re.records, re.nsid
		  FROM blockchain b
		  JOIN name_nsid nn ON b.nsid = nn.root
		  JOIN create_events ce ON b.nsid = ce.nsid
		  JOIN records_events re ON nn.nsid = re.nsid AND nn.pubkey = re.pubkey`,
	`CREATE VIEW top_level_names_vw AS
		SELECT ce.name, ce.nsid
		  FROM blockchain b
		  JOIN name_nsid nn ON b.nsid = nn.nsid
		  JOIN create_events ce ON b.nsid = ce.nsid`,
}

func (s *SQL) applyMigrations(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema (version INTEGER)`); err != nil {
		return errors.NewStorageError("failed to create schema table", err)
	}

	var next sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(version) + 1 FROM schema`).Scan(&next); err != nil {
		return errors.NewStorageError("failed to read schema version", err)
	}

	from := int(next.Int64)
	if !next.Valid {
		from = 0
	}

	if from > len(migrations) {
		return errors.NewStorageError("schema version %d is ahead of known migrations (%d)", from, len(migrations))
	}

	for version := from; version < len(migrations); version++ {
		s.logger.Debugf("applying schema migration %d", version)

		if err := s.applyMigration(ctx, version); err != nil {
			return errors.NewStorageError("schema migration %d failed", version, err)
		}
	}

	return nil
}

// applyMigration runs one migration and records its version in a single
// transaction, so a crash mid-migration leaves the version table consistent.
func (s *SQL) applyMigration(ctx context.Context, version int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, migrations[version]); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err = tx.ExecContext(ctx, `INSERT INTO schema (version) VALUES ($1)`, version); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
