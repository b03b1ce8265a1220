package indexer

import (
	"context"
	"encoding/hex"
	"encoding/json"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/model"
	"github.com/melvincarvalho/nomen/pkg/nsid"
	"github.com/nbd-wtf/go-nostr"
)

// indexCreateEvents fetches kind-38300 events newer than the last stored
// create and applies the ones that validate. An event whose on-chain anchor
// has not confirmed yet is deferred, not rejected: nothing is stored and the
// inclusive since cursor re-delivers it on later ticks. The cursor is the
// newest stored create event's created_at, so a deferred event older than a
// create event stored after it is not fetched again.
func (x *Indexer) indexCreateEvents(ctx context.Context) error {
	x.logger.Infof("[Indexer] beginning create event indexing")

	since, err := x.store.LastCreateEventTime(ctx)
	if err != nil {
		return err
	}

	events, err := x.fetchEvents(ctx, KindName, since)
	if err != nil {
		return err
	}

	for _, ev := range events {
		ed, err := x.parseCreateEvent(ev)
		if err != nil {
			prometheusIndexerInvalidEvents.Inc()
			x.logger.Debugf("[Indexer] skipping event %s: %v", ev.ID, err)

			continue
		}

		ok, err := x.validateCreate(ctx, ed, ev)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		if err = x.saveCreateEvent(ctx, ed); err != nil {
			return err
		}

		prometheusIndexerCreateEvents.Inc()
		x.logger.Infof("[Indexer] saved create event %s for name %s", ed.eventID, ed.name)
	}

	x.logger.Infof("[Indexer] create event indexing complete")

	return nil
}

func (x *Indexer) parseCreateEvent(ev *nostr.Event) (*eventData, error) {
	id, name, err := parseEventTags(ev)
	if err != nil {
		return nil, err
	}

	pk, err := parsePubkey(ev)
	if err != nil {
		return nil, err
	}

	children, err := parseChildren(ev.Content)
	if err != nil {
		return nil, errors.NewProcessingError("event %s content is not a child list", ev.ID, err)
	}

	return &eventData{
		nsid:      id,
		name:      name,
		pubkey:    pk,
		createdAt: int64(ev.CreatedAt),
		eventID:   ev.ID,
		children:  children,
	}, nil
}

// validateCreate applies the acceptance rules. It returns (false, nil) when
// the event is merely skipped this tick (invalid, duplicate, or deferred for
// a missing anchor) and an error only on infrastructure failure.
func (x *Indexer) validateCreate(ctx context.Context, ed *eventData, ev *nostr.Event) (bool, error) {
	// the nsid must commit to this name under the event's own identity
	expected, err := nsid.New(ed.name, ed.pubkey)
	if err != nil {
		prometheusIndexerInvalidEvents.Inc()
		x.logger.Debugf("[Indexer] event %s fingerprint rejected: %v", ed.eventID, err)

		return false, nil
	}

	if !expected.Equal(ed.nsid) {
		prometheusIndexerInvalidEvents.Inc()
		x.logger.Errorf("[Indexer] event %s nsid %s does not match name/pubkey", ed.eventID, ed.nsid)

		return false, nil
	}

	if err = checkSignature(ev); err != nil {
		prometheusIndexerInvalidEvents.Inc()
		x.logger.Errorf("[Indexer] %v", err)

		return false, nil
	}

	anchored, err := x.store.NamespaceExists(ctx, ed.nsid.String())
	if err != nil {
		return false, err
	}

	if !anchored {
		// no confirmed anchor yet; the relay re-delivers next tick
		prometheusIndexerDeferredEvents.Inc()
		x.logger.Debugf("[Indexer] deferring event %s, no anchor for %s", ed.eventID, ed.nsid)

		return false, nil
	}

	available, err := x.store.NameAvailable(ctx, ed.name)
	if err != nil {
		return false, err
	}

	if !available {
		// first create wins; later claims are dropped
		x.logger.Debugf("[Indexer] ignoring event %s, name %s already claimed", ed.eventID, ed.name)
		return false, nil
	}

	return true, nil
}

func (x *Indexer) saveCreateEvent(ctx context.Context, ed *eventData) error {
	root := ed.nsid.String()

	children := ed.children
	if children == nil {
		children = [][]string{}
	}

	childrenJSON, err := json.Marshal(children)
	if err != nil {
		return errors.NewProcessingError("failed to encode children for %s", ed.eventID, err)
	}

	if err = x.store.InsertCreateEvent(ctx, &model.CreateEvent{
		Nsid:      root,
		Pubkey:    hex.EncodeToString(ed.pubkey),
		CreatedAt: ed.createdAt,
		EventID:   ed.eventID,
		Name:      ed.name,
		Children:  string(childrenJSON),
	}); err != nil {
		return err
	}

	if err = x.store.IndexNameNsid(ctx, ed.name, root, root, nil, hex.EncodeToString(ed.pubkey)); err != nil {
		return err
	}

	for _, child := range children {
		childName := child[0]

		childID, err := nsid.New(childName, ed.pubkey)
		if err != nil {
			x.logger.Warnf("[Indexer] skipping child %q of %s: %v", childName, ed.name, err)
			continue
		}

		if err = x.store.IndexNameNsid(ctx, childName, childID.String(), root, &root, child[1]); err != nil {
			return err
		}
	}

	return nil
}
