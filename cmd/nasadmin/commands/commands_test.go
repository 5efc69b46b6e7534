package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/nasadmin/appliance"
	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/logging/logger"
	"github.com/ncobase/nasadmin/server"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devServer(t *testing.T, seed int) (*httptest.Server, *appliance.Store) {
	t.Helper()
	store, err := appliance.Open(context.Background(), &config.SQLite{Source: ":memory:", MaxOpenConn: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Seed(context.Background(), seed))

	l := logger.NewLogger()
	l.SetOutput(&bytes.Buffer{})
	srv := httptest.NewServer(server.New(&config.Server{}, gin.TestMode, l, store).Handler())
	t.Cleanup(srv.Close)
	return srv, store
}

func testConfig(baseURL string) *config.Config {
	cfg := config.FromViper(viper.New())
	cfg.Client.BaseURL = baseURL
	cfg.Client.PageSize = 10
	cfg.Client.Timeout = 5 * time.Second
	return cfg
}

func TestRunListSinglePage(t *testing.T) {
	srv, _ := devServer(t, 23)
	var out bytes.Buffer

	err := runList(context.Background(), &out, testConfig(srv.URL), appliance.Disks, &listOptions{page: 3})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "# page 3/3, records 21-23 of 23", lines[0])

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &first))
	assert.Equal(t, "ada20", first["name"])
}

func TestRunListAllPagesAsTable(t *testing.T) {
	srv, _ := devServer(t, 23)
	var out bytes.Buffer

	err := runList(context.Background(), &out, testConfig(srv.URL), appliance.Users, &listOptions{page: 1, all: true, table: true})
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, "# page "))
	assert.Contains(t, text, "# page 2/3, records 11-20 of 23")
	assert.Contains(t, text, "user22")
}

func TestRunListChildren(t *testing.T) {
	srv, store := devServer(t, 3)
	shares, err := store.List(context.Background(), appliance.Shares, "", 0, 3)
	require.NoError(t, err)
	var share appliance.Share
	require.NoError(t, json.Unmarshal(shares[2], &share))

	var out bytes.Buffer
	err = runList(context.Background(), &out, testConfig(srv.URL), appliance.Snapshots, &listOptions{page: 1, parent: share.ID})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "records 1-3 of 3")

	err = runList(context.Background(), &out, testConfig(srv.URL), appliance.Snapshots, &listOptions{page: 1})
	assert.ErrorContains(t, err, "--parent")
}

func TestRunListPageOutOfRange(t *testing.T) {
	srv, _ := devServer(t, 5)
	var out bytes.Buffer

	err := runList(context.Background(), &out, testConfig(srv.URL), appliance.Pools, &listOptions{page: 0})
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "--json"})
	require.NoError(t, cmd.Execute())

	var info map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Contains(t, info, "version")
}

func TestListCommandRejectsUnknownResource(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"list", "widgets"})
	cmd.SetOut(&bytes.Buffer{})
	assert.ErrorIs(t, cmd.Execute(), appliance.ErrUnknownResource)
}
