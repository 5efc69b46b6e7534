package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/nasadmin/appliance"
	"github.com/ncobase/nasadmin/client"
	"github.com/ncobase/nasadmin/collection"
	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/ctxutil"
	"github.com/ncobase/nasadmin/ecode"
	"github.com/ncobase/nasadmin/logging/logger"
	"github.com/ncobase/nasadmin/net/resp"
	"github.com/ncobase/nasadmin/paging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logger.Logger {
	l := logger.NewLogger()
	l.SetOutput(io.Discard)
	return l
}

func newTestServer(t *testing.T, seed int) (*Server, *appliance.Store) {
	t.Helper()
	store, err := appliance.Open(context.Background(), &config.SQLite{Source: ":memory:", MaxOpenConn: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Seed(context.Background(), seed))

	return New(&config.Server{Host: "127.0.0.1"}, gin.TestMode, quietLogger(), store), store
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) paging.Result[map[string]any] {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res paging.Result[map[string]any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func decodeException(t *testing.T, w *httptest.ResponseRecorder) resp.Exception {
	t.Helper()
	var ex resp.Exception
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ex))
	return ex
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t, 0)
	w := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestListPage(t *testing.T) {
	s, _ := newTestServer(t, 37)

	res := decodePage(t, get(t, s, "/api/disks?page=2&page_size=10&format=json"))
	assert.Equal(t, 37, res.Count)
	require.Len(t, res.Results, 10)
	assert.Equal(t, "ada10", res.Results[0]["name"])

	res = decodePage(t, get(t, s, "/api/disks?page=4&page_size=10&format=json"))
	assert.Len(t, res.Results, 7)
}

func TestListDefaultsAndPastTheEnd(t *testing.T) {
	s, _ := newTestServer(t, 12)

	res := decodePage(t, get(t, s, "/api/pools"))
	assert.Equal(t, 12, res.Count)
	assert.Len(t, res.Results, paging.DefaultPageSize)

	w := get(t, s, "/api/pools?page=9&page_size=10")
	assert.JSONEq(t, `{"count":12,"results":[]}`, w.Body.String())
}

func TestListIgnoresEchoedCount(t *testing.T) {
	s, _ := newTestServer(t, 5)
	res := decodePage(t, get(t, s, "/api/users?page=1&page_size=10&format=json&count=99"))
	assert.Equal(t, 5, res.Count)
}

func TestListRejectsBadQuery(t *testing.T) {
	s, _ := newTestServer(t, 5)

	for _, q := range []string{"page=-1", "page_size=-5", "page=abc", "format=xml", "page_size=5000"} {
		w := get(t, s, "/api/disks?"+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.Equal(t, ecode.ParamErr, decodeException(t, w).Code, q)
	}
}

func TestUnknownResource(t *testing.T) {
	s, _ := newTestServer(t, 1)
	w := get(t, s, "/api/widgets")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ecode.NothingFound, decodeException(t, w).Code)
}

func TestSnapshotsNeedAShare(t *testing.T) {
	s, _ := newTestServer(t, 1)
	w := get(t, s, "/api/snapshots")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListChildren(t *testing.T) {
	s, store := newTestServer(t, 6)

	shares, err := store.List(context.Background(), appliance.Shares, "", 0, 10)
	require.NoError(t, err)
	var share appliance.Share
	require.NoError(t, json.Unmarshal(shares[3], &share))

	res := decodePage(t, get(t, s, "/api/shares/"+share.ID+"/snapshots?page=1&page_size=2"))
	assert.Equal(t, 4, res.Count)
	require.Len(t, res.Results, 2)
	assert.Equal(t, share.ID, res.Results[0]["share_id"])

	w := get(t, s, "/api/shares/missing/snapshots")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(t, s, "/api/disks/"+share.ID+"/snapshots")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecord(t *testing.T) {
	s, store := newTestServer(t, 2)
	require.NoError(t, store.Put(context.Background(), appliance.Users, "", &appliance.User{
		Base: appliance.Base{ID: "u-admin", Name: "root"},
		UID:  0,
	}))

	w := get(t, s, "/api/users/u-admin")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"root"`)

	w = get(t, s, "/api/users/nobody")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTraceHeader(t *testing.T) {
	s, _ := newTestServer(t, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/disks", nil)
	req.Header.Set(ctxutil.TraceIDHeader, "abc-123")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(ctxutil.TraceIDHeader))

	w = get(t, s, "/api/disks")
	assert.NotEmpty(t, w.Header().Get(ctxutil.TraceIDHeader))
}

func TestCollectionAgainstServer(t *testing.T) {
	s, store := newTestServer(t, 25)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	shares, err := store.List(context.Background(), appliance.Shares, "", 0, 10)
	require.NoError(t, err)
	var share appliance.Share
	require.NoError(t, json.Unmarshal(shares[4], &share))

	cfg := &config.Client{BaseURL: srv.URL, PageSize: 2, Timeout: 5 * time.Second, EchoCount: true}
	fetcher := client.New[appliance.Snapshot](cfg, client.WithLogger(quietLogger()))
	c, err := collection.New[appliance.Snapshot](fetcher, &collection.Options{
		PageSize:  cfg.PageSize,
		EchoCount: cfg.EchoCount,
		BaseURL: collection.Computed(func(collection.Window) string {
			return srv.URL + "/api" + appliance.Snapshots.Path(share.ID)
		}),
		Logger: quietLogger(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	op, err := c.Fetch(ctx)
	require.NoError(t, err)
	require.NoError(t, op.Wait(ctx))

	var names []string
	for {
		for _, snap := range c.Items() {
			names = append(names, snap.Name)
		}
		op, err := c.NextPage(ctx)
		require.NoError(t, err)
		if op == nil {
			break
		}
		require.NoError(t, op.Wait(ctx))
	}

	assert.Equal(t, 3, c.PageInfo().PageCount)
	assert.Equal(t, []string{
		"share4@auto-00", "share4@auto-01", "share4@auto-02", "share4@auto-03", "share4@auto-04",
	}, names)
}
