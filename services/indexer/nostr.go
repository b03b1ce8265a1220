package indexer

import (
	"context"

	"github.com/nbd-wtf/go-nostr"
)

// EventSource fetches the stored events matching a filter from the relay
// set. Implementations return after end-of-stored-events; they do not stream.
type EventSource interface {
	Events(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error)
}

// relayPool queries a set of public relays. Each call runs over a fresh
// ephemeral session; no long-lived connection state is kept between ticks.
type relayPool struct {
	relays []string
}

func NewRelayPool(relays []string) EventSource {
	return &relayPool{relays: relays}
}

func (p *relayPool) Events(ctx context.Context, filter nostr.Filter) ([]*nostr.Event, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := nostr.NewSimplePool(ctx)

	var events []*nostr.Event
	for incoming := range pool.SubManyEose(ctx, p.relays, nostr.Filters{filter}) {
		events = append(events, incoming.Event)
	}

	return events, ctx.Err()
}
