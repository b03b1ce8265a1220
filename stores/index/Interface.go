package index

import (
	"context"
	"database/sql"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/model"
	"github.com/melvincarvalho/nomen/util"
)

var (
	// ErrNotFound is returned by lookups when no resolvable row exists.
	ErrNotFound = errors.New(errors.ERR_NOT_FOUND, "not found")
)

// Store is the persistence surface shared by the indexer pipelines and the
// web handlers. Writes are monotone: anchors and create events are
// insert-if-absent, records rows are upsert-newest-wins. No deletion path
// exists.
type Store interface {
	GetDB() *sql.DB
	GetDBEngine() util.SQLEngine

	// NextIndexHeight returns max(blockchain.height)+1, or genesis when the
	// blockchain table is empty.
	NextIndexHeight(ctx context.Context, genesis uint64) (uint64, error)

	// InsertNamespace records an on-chain anchor. A second anchor for the
	// same nsid is silently ignored; the first observation wins.
	InsertNamespace(ctx context.Context, anchor *model.NamespaceAnchor) error

	// NamespaceExists reports blockchain-table membership for nsid.
	NamespaceExists(ctx context.Context, nsid string) (bool, error)

	// LastCreateEventTime returns max(create_events.created_at) or 0.
	LastCreateEventTime(ctx context.Context) (int64, error)

	// InsertCreateEvent stores a validated create event if its nsid is
	// absent.
	InsertCreateEvent(ctx context.Context, event *model.CreateEvent) error

	// IndexNameNsid records the name->nsid mapping used by the resolution
	// views. parent is nil for top-level names.
	IndexNameNsid(ctx context.Context, name, nsid, root string, parent *string, pubkey string) error

	// LastRecordsTime returns max(records_events.created_at) or 0.
	LastRecordsTime(ctx context.Context) (int64, error)

	// InsertRecordsEvent upserts by (nsid, pubkey), keeping the row with the
	// greatest created_at.
	InsertRecordsEvent(ctx context.Context, event *model.RecordsEvent) error

	// NameAvailable reports whether no create event claims name.
	NameAvailable(ctx context.Context, name string) (bool, error)

	// NameRecords returns the records map for a resolvable name, or
	// ErrNotFound.
	NameRecords(ctx context.Context, name string) (map[string]string, error)

	// TopLevelNames lists the confirmed top-level names.
	TopLevelNames(ctx context.Context) ([]model.NameEntry, error)

	// NamespaceDetails returns everything known about one nsid.
	NamespaceDetails(ctx context.Context, nsid string) (*model.NamespaceDetails, error)

	Close() error
}
