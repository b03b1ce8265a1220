// Package indexer runs the three ingest pipelines that keep the name
// database current: the blockchain walker, the create-event phase and the
// records-event phase. One supervisor loop runs them in sequence on a
// configurable delay; no pipeline is re-entrant.
package indexer

import (
	"context"
	"time"

	"github.com/melvincarvalho/nomen/pkg/chaincfg"
	"github.com/melvincarvalho/nomen/stores/index"
	"github.com/melvincarvalho/nomen/ulogger"
	"github.com/ordishs/gocore"
)

// Indexer carries the logger and the adapters for one indexing process.
type Indexer struct {
	logger        ulogger.Logger
	store         index.Store
	chain         BitcoinClient
	events        EventSource
	params        *chaincfg.Params
	delay         time.Duration
	confirmations uint64
	stats         *gocore.Stat
}

// New returns an indexer instance. Delay and confirmation lag come from
// configuration.
func New(logger ulogger.Logger, store index.Store, chain BitcoinClient, events EventSource, params *chaincfg.Params) *Indexer {
	initPrometheusMetrics()

	delaySeconds, _ := gocore.Config().GetInt("server_indexerDelay", 30)
	confirmations, _ := gocore.Config().GetInt("server_confirmations", 3)

	return &Indexer{
		logger:        logger,
		store:         store,
		chain:         chain,
		events:        events,
		params:        params,
		delay:         time.Duration(delaySeconds) * time.Second,
		confirmations: uint64(confirmations), //nolint:gosec // small config value
		stats:         gocore.NewStat("indexer"),
	}
}

func (x *Indexer) Health(_ context.Context) (int, string, error) {
	return 0, "", nil
}

func (x *Indexer) Init(_ context.Context) error {
	return nil
}

// Start runs the supervisor loop until ctx is done. The sleep between ticks
// is cancellable; cancelling ctx also stops the blockchain walk of an ongoing
// tick at the next block boundary and aborts any pending RPC retry or relay
// fetch.
func (x *Indexer) Start(ctx context.Context) error {
	x.logger.Infof("[Indexer] starting on %s, tick delay %s, confirmation lag %d",
		x.params.Name, x.delay, x.confirmations)

	for {
		x.tick(ctx)

		select {
		case <-ctx.Done():
			x.logger.Infof("[Indexer] stopping")
			return nil
		case <-time.After(x.delay):
		}
	}
}

func (x *Indexer) Stop(_ context.Context) error {
	return nil
}

// tick runs the three pipelines in their fixed order. A failing pipeline
// aborts the tick; the cursors make the next tick resume exactly where this
// one left off.
func (x *Indexer) tick(ctx context.Context) {
	start := gocore.CurrentTime()
	defer func() {
		x.stats.NewStat("tick").AddTime(start)
	}()

	if err := x.indexBlockchain(ctx); err != nil {
		prometheusIndexerTickErrors.Inc()
		x.logger.Errorf("[Indexer] blockchain pass aborted: %v", err)

		return
	}

	if err := x.indexCreateEvents(ctx); err != nil {
		prometheusIndexerTickErrors.Inc()
		x.logger.Errorf("[Indexer] create event pass aborted: %v", err)

		return
	}

	if err := x.indexRecordsEvents(ctx); err != nil {
		prometheusIndexerTickErrors.Inc()
		x.logger.Errorf("[Indexer] records event pass aborted: %v", err)
	}
}
