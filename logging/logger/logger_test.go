package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ncobase/nasadmin/ctxutil"
	"github.com/ncobase/nasadmin/logging/logger/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryCarriesTraceAndVersion(t *testing.T) {
	l := NewLogger()
	l.SetFormatter(&logrus.JSONFormatter{})
	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.SetVersion("1.2.3")

	ctx := ctxutil.SetTraceID(context.Background(), "trace-1")
	l.Info(ctx, "page loaded")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "page loaded", line["msg"])
	assert.Equal(t, "trace-1", line[ctxutil.TraceIDKey])
	assert.Equal(t, "1.2.3", line[VersionKey])
}

func TestInitFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nasadmin.log")
	l := NewLogger()

	cleanup, err := l.Init(&config.Config{Level: int(logrus.DebugLevel), Format: "json", Output: "file", OutputFile: path})
	require.NoError(t, err)

	l.Debugf(context.Background(), "fetched page %d", 2)
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fetched page 2")
}

func TestInitFileOutputRequiresPath(t *testing.T) {
	_, err := NewLogger().Init(&config.Config{Output: "file"})
	assert.Error(t, err)
}

func TestApplyLevelIgnoresOutOfRange(t *testing.T) {
	l := NewLogger()
	l.ApplyLevel(int(logrus.WarnLevel))
	l.ApplyLevel(42)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}
