package sql

import (
	"context"
	"testing"

	"github.com/melvincarvalho/nomen/errors"
	"github.com/melvincarvalho/nomen/model"
	"github.com/melvincarvalho/nomen/stores/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testNsid   = "1122334455667788990011223344556677889900"
	testPubkey = "d57ffca4e2a6e20c8c1b6f1e8f2f4c3b5a69788796a5b4c3d2e1f00112233445"
)

// resolvableName sets up the full triple: anchor, create event, name mapping
// and a records event.
func resolvableName(t *testing.T, s *SQL) {
	ctx := context.Background()

	require.NoError(t, s.InsertNamespace(ctx, testAnchor(testNsid, 1)))

	create := testCreateEvent(testNsid, "alice", 100)
	create.Pubkey = testPubkey
	require.NoError(t, s.InsertCreateEvent(ctx, create))
	require.NoError(t, s.IndexNameNsid(ctx, "alice", testNsid, testNsid, nil, testPubkey))

	records := testRecordsEvent(200, `{"IP4":"127.0.0.1","NPUB":"npub1xyz"}`)
	records.Nsid = testNsid
	records.Pubkey = testPubkey
	require.NoError(t, s.InsertRecordsEvent(ctx, records))
}

func TestSQL_NameRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("resolvable name", func(t *testing.T) {
		s := newTestStore(t)
		resolvableName(t, s)

		records, err := s.NameRecords(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"IP4": "127.0.0.1", "NPUB": "npub1xyz"}, records)
	})

	t.Run("unknown name is not found", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.NameRecords(ctx, "nonexistent")
		require.Error(t, err)
		assert.True(t, errors.Is(err, index.ErrNotFound))
	})

	t.Run("name without records event is not resolvable", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.InsertNamespace(ctx, testAnchor(testNsid, 1)))
		require.NoError(t, s.InsertCreateEvent(ctx, testCreateEvent(testNsid, "alice", 100)))
		require.NoError(t, s.IndexNameNsid(ctx, "alice", testNsid, testNsid, nil, testPubkey))

		_, err := s.NameRecords(ctx, "alice")
		assert.True(t, errors.Is(err, index.ErrNotFound))
	})

	t.Run("create event without anchor is not resolvable", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.InsertCreateEvent(ctx, testCreateEvent(testNsid, "alice", 100)))
		require.NoError(t, s.IndexNameNsid(ctx, "alice", testNsid, testNsid, nil, testPubkey))

		records := testRecordsEvent(200, `{}`)
		records.Nsid = testNsid
		records.Pubkey = testPubkey
		require.NoError(t, s.InsertRecordsEvent(ctx, records))

		_, err := s.NameRecords(ctx, "alice")
		assert.True(t, errors.Is(err, index.ErrNotFound))
	})
}

func TestSQL_TopLevelNames(t *testing.T) {
	ctx := context.Background()

	t.Run("anchor alone is not listed", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.InsertNamespace(ctx, testAnchor(testNsid, 1)))

		names, err := s.TopLevelNames(ctx)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("anchored create is listed", func(t *testing.T) {
		s := newTestStore(t)
		resolvableName(t, s)

		names, err := s.TopLevelNames(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.NameEntry{{Name: "alice", Nsid: testNsid}}, names)
	})
}

func TestSQL_NamespaceDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("full details", func(t *testing.T) {
		s := newTestStore(t)
		resolvableName(t, s)

		details, err := s.NamespaceDetails(ctx, testNsid)
		require.NoError(t, err)

		require.NotNil(t, details.Name)
		assert.Equal(t, "alice", *details.Name)
		assert.Equal(t, map[string]string{"IP4": "127.0.0.1", "NPUB": "npub1xyz"}, details.Records)
		assert.Empty(t, details.Children)

		require.NotNil(t, details.Blockdata)
		assert.Equal(t, uint64(1), details.Blockdata.Height)
	})

	t.Run("unknown nsid has empty details", func(t *testing.T) {
		s := newTestStore(t)

		details, err := s.NamespaceDetails(ctx, "beef")
		require.NoError(t, err)

		assert.Nil(t, details.Name)
		assert.Nil(t, details.Blockdata)
		assert.Empty(t, details.Records)
	})

	t.Run("records default to empty before any records event", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.InsertNamespace(ctx, testAnchor(testNsid, 1)))
		require.NoError(t, s.InsertCreateEvent(ctx, testCreateEvent(testNsid, "alice", 100)))
		require.NoError(t, s.IndexNameNsid(ctx, "alice", testNsid, testNsid, nil, testPubkey))

		details, err := s.NamespaceDetails(ctx, testNsid)
		require.NoError(t, err)

		require.NotNil(t, details.Name)
		assert.Empty(t, details.Records)
		require.NotNil(t, details.Blockdata)
	})
}
