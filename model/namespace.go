// Package model carries the rows and wire payloads shared by the indexer
// pipelines, the store and the web surface.
package model

// NamespaceAnchor is the on-chain record certifying first-seen ownership of
// an nsid. The nsid is the primary key; the first observation wins.
type NamespaceAnchor struct {
	Nsid      string `json:"nsid"`
	Blockhash string `json:"blockhash"`
	Txid      string `json:"txid"`
	Vout      uint32 `json:"vout"`
	Height    uint64 `json:"height"`
}

// CreateEvent is a validated kind-38300 Nostr event declaring a name/owner
// pair.
type CreateEvent struct {
	Nsid      string `json:"nsid"`
	Pubkey    string `json:"pubkey"`
	CreatedAt int64  `json:"created_at"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	// Children is the raw JSON array of child descriptors from the event
	// content.
	Children string `json:"children"`
}

// RecordsEvent is a validated kind-38301 Nostr event carrying the key/value
// records for a name. At most one row is kept per (nsid, pubkey); the newest
// created_at wins.
type RecordsEvent struct {
	Nsid      string `json:"nsid"`
	Pubkey    string `json:"pubkey"`
	CreatedAt int64  `json:"created_at"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	// Records is the JSON object of records, keys upper-cased.
	Records string `json:"records"`
}

// NameEntry is one confirmed top-level name.
type NameEntry struct {
	Name string `json:"name"`
	Nsid string `json:"nsid"`
}

// Blockdata is the on-chain coordinate set of an anchor.
type Blockdata struct {
	Blockhash string `json:"blockhash"`
	Txid      string `json:"txid"`
	Vout      uint32 `json:"vout"`
	Height    uint64 `json:"height"`
}

// NamespaceDetails is everything known about one nsid. Name and Blockdata are
// nil until the corresponding side has been indexed.
type NamespaceDetails struct {
	Name      *string           `json:"name"`
	Records   map[string]string `json:"records"`
	Children  []NameEntry       `json:"children"`
	Blockdata *Blockdata        `json:"blockdata"`
}
