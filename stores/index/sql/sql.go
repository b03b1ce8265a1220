// Package sql implements the index store on sqlite or postgres, selected by
// the store URL scheme.
package sql

import (
	"context"
	"database/sql"
	"net/url"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/ulogger"
	"github.com/melvincarvalho/nomen/util"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type SQL struct {
	logger ulogger.Logger
	db     *sql.DB
	engine util.SQLEngine
}

func New(ctx context.Context, logger ulogger.Logger, storeURL *url.URL) (*SQL, error) {
	db, err := util.InitSQLDB(logger, storeURL)
	if err != nil {
		return nil, errors.NewStorageError("failed to init sql db", err)
	}

	s := &SQL{
		logger: logger,
		db:     db,
		engine: util.SQLEngine(storeURL.Scheme),
	}

	if err = s.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQL) GetDB() *sql.DB {
	return s.db
}

func (s *SQL) GetDBEngine() util.SQLEngine {
	return s.engine
}

func (s *SQL) Close() error {
	return s.db.Close()
}
