package indexer

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/pkg/nsid"
	"github.com/nbd-wtf/go-nostr"
)

// Nostr event kinds of the naming protocol.
const (
	KindName     = 38300
	KindRecords  = 38301
	KindTransfer = 38302 // reserved
)

// relayBatchLimit caps one filter request. A saturated batch means the relay
// may be holding more; the fetch loop advances since and re-issues.
const relayBatchLimit = 1000

// eventData is the protocol content extracted from a Nostr event.
type eventData struct {
	nsid      nsid.Nsid
	name      string
	pubkey    []byte
	createdAt int64
	eventID   string
	children  [][]string
	records   map[string]string
}

// parseEventTags extracts the nsid and name carried in the event's tags. The
// event must carry exactly one d tag holding a 20-byte hex nsid and exactly
// one nom tag holding a valid name.
func parseEventTags(ev *nostr.Event) (nsid.Nsid, string, error) {
	var (
		dValues   []string
		nomValues []string
	)

	for _, tag := range ev.Tags {
		if len(tag) < 2 {
			continue
		}

		switch tag[0] {
		case "d":
			dValues = append(dValues, tag[1])
		case "nom":
			nomValues = append(nomValues, tag[1])
		}
	}

	if len(dValues) != 1 {
		return nsid.Nsid{}, "", errors.NewProcessingError("event %s carries %d d tags, want 1", ev.ID, len(dValues))
	}

	if len(nomValues) != 1 {
		return nsid.Nsid{}, "", errors.NewProcessingError("event %s carries %d nom tags, want 1", ev.ID, len(nomValues))
	}

	id, err := nsid.FromString(dValues[0])
	if err != nil {
		return nsid.Nsid{}, "", errors.NewProcessingError("event %s d tag is not an nsid", ev.ID, err)
	}

	name := nomValues[0]
	if err = nsid.ValidateName(name); err != nil {
		return nsid.Nsid{}, "", errors.NewProcessingError("event %s nom tag is not a valid name", ev.ID, err)
	}

	return id, name, nil
}

func parsePubkey(ev *nostr.Event) ([]byte, error) {
	pk, err := hex.DecodeString(ev.PubKey)
	if err != nil || len(pk) != nsid.PubKeySize {
		return nil, errors.NewProcessingError("event %s pubkey is not a %d-byte hex key", ev.ID, nsid.PubKeySize)
	}

	return pk, nil
}

// parseChildren decodes the create-event content, a JSON array of
// [name, pubkey] pairs. Empty content means no children.
func parseChildren(content string) ([][]string, error) {
	if content == "" {
		return nil, nil
	}

	var children [][]string
	if err := json.Unmarshal([]byte(content), &children); err != nil {
		return nil, err
	}

	for _, child := range children {
		if len(child) != 2 {
			return nil, errors.NewProcessingError("child descriptor must be a [name, pubkey] pair")
		}
	}

	return children, nil
}

func checkSignature(ev *nostr.Event) error {
	ok, err := ev.CheckSignature()
	if err != nil {
		return errors.NewInvalidArgumentError("event %s signature check failed", ev.ID, err)
	}

	if !ok {
		return errors.NewInvalidArgumentError("event %s signature is invalid", ev.ID)
	}

	return nil
}

// fetchEvents pulls all stored events of a kind newer than since. The since
// boundary is inclusive, so the overlap re-delivers the newest already-stored
// events; insertion is idempotent, duplicates cost nothing. While a batch
// saturates the relay cap the cursor advances to the newest created_at seen,
// guaranteeing forward progress without gaps.
func (x *Indexer) fetchEvents(ctx context.Context, kind int, since int64) ([]*nostr.Event, error) {
	seen := make(map[string]*nostr.Event)
	cursor := nostr.Timestamp(since)

	for {
		filter := nostr.Filter{
			Kinds: []int{kind},
			Since: &cursor,
			Limit: relayBatchLimit,
		}

		batch, err := x.events.Events(ctx, filter)
		if err != nil {
			return nil, errors.NewServiceError("relay fetch for kind %d failed", kind, err)
		}

		fresh := 0
		next := cursor

		for _, ev := range batch {
			if _, ok := seen[ev.ID]; !ok {
				seen[ev.ID] = ev
				fresh++
			}

			if ev.CreatedAt > next {
				next = ev.CreatedAt
			}
		}

		if len(batch) < relayBatchLimit || fresh == 0 {
			break
		}

		cursor = next
	}

	events := make([]*nostr.Event, 0, len(seen))
	for _, ev := range seen {
		events = append(events, ev)
	}

	// oldest first, id as tie-break, so replays apply in a stable order
	sort.Slice(events, func(i, j int) bool {
		if events[i].CreatedAt != events[j].CreatedAt {
			return events[i].CreatedAt < events[j].CreatedAt
		}
		return events[i].ID < events[j].ID
	})

	return events, nil
}
