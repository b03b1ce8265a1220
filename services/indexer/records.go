package indexer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/model"
	"github.com/nbd-wtf/go-nostr"
)

// indexRecordsEvents fetches kind-38301 events newer than the last stored
// records row and upserts the ones that validate. Only the newest created_at
// per (nsid, pubkey) survives, so delivery order does not matter.
func (x *Indexer) indexRecordsEvents(ctx context.Context) error {
	x.logger.Infof("[Indexer] beginning records event indexing")

	since, err := x.store.LastRecordsTime(ctx)
	if err != nil {
		return err
	}

	events, err := x.fetchEvents(ctx, KindRecords, since)
	if err != nil {
		return err
	}

	for _, ev := range events {
		ed, err := x.parseRecordsEvent(ev)
		if err != nil {
			prometheusIndexerInvalidEvents.Inc()
			x.logger.Debugf("[Indexer] skipping event %s: %v", ev.ID, err)

			continue
		}

		if err = checkSignature(ev); err != nil {
			prometheusIndexerInvalidEvents.Inc()
			x.logger.Errorf("[Indexer] %v", err)

			continue
		}

		if err = x.saveRecordsEvent(ctx, ev, ed); err != nil {
			return err
		}

		prometheusIndexerRecordsEvents.Inc()
	}

	x.logger.Infof("[Indexer] records event indexing complete")

	return nil
}

func (x *Indexer) parseRecordsEvent(ev *nostr.Event) (*eventData, error) {
	id, name, err := parseEventTags(ev)
	if err != nil {
		return nil, err
	}

	if _, err = parsePubkey(ev); err != nil {
		return nil, err
	}

	var records map[string]string
	if err = json.Unmarshal([]byte(ev.Content), &records); err != nil {
		return nil, errors.NewProcessingError("event %s content is not a records object", ev.ID, err)
	}

	if records == nil {
		return nil, errors.NewProcessingError("event %s content is not a records object", ev.ID)
	}

	return &eventData{
		nsid:      id,
		name:      name,
		createdAt: int64(ev.CreatedAt),
		eventID:   ev.ID,
		records:   records,
	}, nil
}

func (x *Indexer) saveRecordsEvent(ctx context.Context, ev *nostr.Event, ed *eventData) error {
	// record keys are case-insensitive; normalize on write, keep values
	// verbatim
	normalized := make(map[string]string, len(ed.records))
	for k, v := range ed.records {
		normalized[strings.ToUpper(k)] = v
	}

	raw, err := json.Marshal(normalized)
	if err != nil {
		return errors.NewProcessingError("failed to encode records for %s", ed.eventID, err)
	}

	return x.store.InsertRecordsEvent(ctx, &model.RecordsEvent{
		Nsid:      ed.nsid.String(),
		Pubkey:    ev.PubKey,
		CreatedAt: ed.createdAt,
		EventID:   ed.eventID,
		Name:      ed.name,
		Records:   string(raw),
	})
}
