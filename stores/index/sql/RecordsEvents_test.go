package sql

import (
	"context"
	"testing"

	"github.com/melvincarvalho/nomen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecordsEvent(createdAt int64, records string) *model.RecordsEvent {
	return &model.RecordsEvent{
		Nsid:      "aa",
		Pubkey:    "d57ffca4e2a6e20c8c1b6f1e8f2f4c3b5a69788796a5b4c3d2e1f00112233445",
		CreatedAt: createdAt,
		EventID:   "records-event",
		Name:      "alice",
		Records:   records,
	}
}

func storedRecords(t *testing.T, s *SQL) (string, int64) {
	var (
		records   string
		createdAt int64
	)
	require.NoError(t, s.db.QueryRow(`SELECT records, created_at FROM records_events WHERE nsid = $1`, "aa").
		Scan(&records, &createdAt))

	return records, createdAt
}

func TestSQL_InsertRecordsEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("newer created_at replaces", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.InsertRecordsEvent(ctx, testRecordsEvent(100, `{"IP4":"1.1.1.1"}`)))
		require.NoError(t, s.InsertRecordsEvent(ctx, testRecordsEvent(200, `{"IP4":"2.2.2.2"}`)))

		records, createdAt := storedRecords(t, s)
		assert.Equal(t, `{"IP4":"2.2.2.2"}`, records)
		assert.Equal(t, int64(200), createdAt)
	})

	t.Run("older created_at is ignored", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.InsertRecordsEvent(ctx, testRecordsEvent(200, `{"IP4":"2.2.2.2"}`)))
		require.NoError(t, s.InsertRecordsEvent(ctx, testRecordsEvent(100, `{"IP4":"1.1.1.1"}`)))

		records, createdAt := storedRecords(t, s)
		assert.Equal(t, `{"IP4":"2.2.2.2"}`, records)
		assert.Equal(t, int64(200), createdAt)
	})

	t.Run("equal created_at keeps the stored row", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.InsertRecordsEvent(ctx, testRecordsEvent(100, `{"A":"1"}`)))
		require.NoError(t, s.InsertRecordsEvent(ctx, testRecordsEvent(100, `{"A":"2"}`)))

		records, _ := storedRecords(t, s)
		assert.Equal(t, `{"A":"1"}`, records)
	})

	t.Run("one row per nsid and pubkey", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.InsertRecordsEvent(ctx, testRecordsEvent(100, `{}`)))
		require.NoError(t, s.InsertRecordsEvent(ctx, testRecordsEvent(200, `{}`)))

		other := testRecordsEvent(100, `{}`)
		other.Pubkey = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
		require.NoError(t, s.InsertRecordsEvent(ctx, other))

		var count int64
		require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM records_events`).Scan(&count))
		assert.Equal(t, int64(2), count)
	})

	t.Run("last records time", func(t *testing.T) {
		s := newTestStore(t)

		last, err := s.LastRecordsTime(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), last)

		require.NoError(t, s.InsertRecordsEvent(ctx, testRecordsEvent(321, `{}`)))

		last, err = s.LastRecordsTime(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(321), last)
	})
}
