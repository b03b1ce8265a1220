package main

import (
	"context"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/melvincarvalho/nomen/pkg/chaincfg"
	"github.com/melvincarvalho/nomen/services/indexer"
	"github.com/melvincarvalho/nomen/services/web"
	indexstore "github.com/melvincarvalho/nomen/stores/index/sql"
	"github.com/melvincarvalho/nomen/ulogger"
	"github.com/ordishs/gocore"
)

// Name used by build script for the binaries. (Please keep on single line)
const progname = "nomen"

// Version & commit strings injected at build with -ldflags -X...
var version string
var commit string

var defaultRelays = []string{
	"wss://relay.damus.io",
	"wss://relay.snort.social",
	"wss://nos.lol",
	"wss://nostr.orangepill.dev",
}

func init() {
	gocore.SetInfo(progname, version, commit)
}

func main() {
	logger := ulogger.New(progname)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	network, _ := gocore.Config().Get("network", "bitcoin")

	params, err := chaincfg.GetChainParams(network)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	storeURL, err, found := gocore.Config().GetURL("indexstore")
	if err != nil {
		logger.Fatalf("invalid indexstore url: %v", err)
	}

	if !found {
		storeURL, _ = url.Parse("sqlite:///nomen")
	}

	store, err := indexstore.New(ctx, logger, storeURL)
	if err != nil {
		logger.Fatalf("failed to open index store: %v", err)
	}

	defer func() {
		_ = store.Close()
	}()

	chain, err := indexer.NewBitcoinClient(logger)
	if err != nil {
		logger.Fatalf("%v", err)
	}

	if _, err = chain.GetBlockCount(); err != nil {
		logger.Fatalf("bitcoind unreachable: %v", err)
	}

	relayList, _ := gocore.Config().Get("nostr_relays", strings.Join(defaultRelays, "|"))
	events := indexer.NewRelayPool(strings.Split(relayList, "|"))

	idx := indexer.New(logger, store, chain, events, params)
	srv := web.New(logger, store)

	go func() {
		if err := idx.Start(ctx); err != nil {
			logger.Errorf("[Indexer] stopped: %v", err)
		}
	}()

	if err := srv.Start(ctx); err != nil {
		logger.Fatalf("[Web] stopped: %v", err)
	}
}
