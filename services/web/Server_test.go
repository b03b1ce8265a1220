package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/melvincarvalho/nomen/model"
	indexstore "github.com/melvincarvalho/nomen/stores/index/sql"
	"github.com/melvincarvalho/nomen/ulogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testNsid   = "1122334455667788990011223344556677889900"
	testPubkey = "d57ffca4e2a6e20c8c1b6f1e8f2f4c3b5a69788796a5b4c3d2e1f00112233445"
)

func newTestWeb(t *testing.T) (*Web, *indexstore.SQL) {
	storeURL, err := url.Parse("sqlitememory:///")
	require.NoError(t, err)

	store, err := indexstore.New(context.Background(), ulogger.TestLogger{}, storeURL)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})

	return New(ulogger.TestLogger{}, store), store
}

func seedResolvableName(t *testing.T, store *indexstore.SQL) {
	ctx := context.Background()

	require.NoError(t, store.InsertNamespace(ctx, &model.NamespaceAnchor{
		Nsid:      testNsid,
		Blockhash: "blockhash",
		Txid:      "txid",
		Vout:      1,
		Height:    100,
	}))

	require.NoError(t, store.InsertCreateEvent(ctx, &model.CreateEvent{
		Nsid:      testNsid,
		Pubkey:    testPubkey,
		CreatedAt: 100,
		EventID:   "create-event",
		Name:      "alice",
		Children:  "[]",
	}))

	require.NoError(t, store.IndexNameNsid(ctx, "alice", testNsid, testNsid, nil, testPubkey))

	require.NoError(t, store.InsertRecordsEvent(ctx, &model.RecordsEvent{
		Nsid:      testNsid,
		Pubkey:    testPubkey,
		CreatedAt: 200,
		EventID:   "records-event",
		Name:      "alice",
		Records:   `{"IP4":"127.0.0.1"}`,
	}))
}

func doRequest(t *testing.T, handler echo.HandlerFunc, target string, pathParams map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	for name, value := range pathParams {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}

	require.NoError(t, handler(c))

	return rec
}

func TestWeb_ApiName(t *testing.T) {
	t.Run("resolvable name returns the records", func(t *testing.T) {
		w, store := newTestWeb(t)
		seedResolvableName(t, store)

		rec := doRequest(t, w.ApiName, "/api/name?name=alice", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var records map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		assert.Equal(t, map[string]string{"IP4": "127.0.0.1"}, records)
	})

	t.Run("unknown name is a 404", func(t *testing.T) {
		w, _ := newTestWeb(t)

		rec := doRequest(t, w.ApiName, "/api/name?name=nonexistent", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing name parameter is a 400", func(t *testing.T) {
		w, _ := newTestWeb(t)

		rec := doRequest(t, w.ApiName, "/api/name", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWeb_Explorer(t *testing.T) {
	t.Run("empty index lists nothing", func(t *testing.T) {
		w, _ := newTestWeb(t)

		rec := doRequest(t, w.Explorer, "/explorer", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("confirmed names are listed", func(t *testing.T) {
		w, store := newTestWeb(t)
		seedResolvableName(t, store)

		rec := doRequest(t, w.Explorer, "/explorer", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var names []model.NameEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
		assert.Equal(t, []model.NameEntry{{Name: "alice", Nsid: testNsid}}, names)
	})
}

func TestWeb_ExploreNsid(t *testing.T) {
	t.Run("known nsid shows details", func(t *testing.T) {
		w, store := newTestWeb(t)
		seedResolvableName(t, store)

		rec := doRequest(t, w.ExploreNsid, "/explorer/"+testNsid, map[string]string{"nsid": testNsid})
		require.Equal(t, http.StatusOK, rec.Code)

		var details model.NamespaceDetails
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))

		require.NotNil(t, details.Name)
		assert.Equal(t, "alice", *details.Name)
		require.NotNil(t, details.Blockdata)
		assert.Equal(t, uint64(100), details.Blockdata.Height)
	})

	t.Run("unknown nsid is a 404", func(t *testing.T) {
		w, _ := newTestWeb(t)

		rec := doRequest(t, w.ExploreNsid, "/explorer/beef", map[string]string{"nsid": "beef"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("anchor without a create event is a 404", func(t *testing.T) {
		w, store := newTestWeb(t)

		require.NoError(t, store.InsertNamespace(context.Background(), &model.NamespaceAnchor{
			Nsid:      testNsid,
			Blockhash: "blockhash",
			Txid:      "txid",
			Vout:      0,
			Height:    1,
		}))

		rec := doRequest(t, w.ExploreNsid, "/explorer/"+testNsid, map[string]string{"nsid": testNsid})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestWeb_Pages(t *testing.T) {
	w, _ := newTestWeb(t)

	rec := doRequest(t, w.Landing, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nomen")

	rec = doRequest(t, w.Faqs, "/faqs", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "FAQs")
}
