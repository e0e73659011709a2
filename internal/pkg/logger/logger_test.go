package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogs_NewestFirstWithStableIds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewIsolatedLogger(path)

	l.Info("CATALOG", "first", nil)
	l.Warn("CATALOG", "second", map[string]interface{}{"k": "v"})
	l.Error("GENERATION", "third", map[string]interface{}{"error": "boom"})
	require.NoError(t, l.Sync())

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "third", logs[0].Message)
	assert.Equal(t, "GENERATION", logs[0].Module)
	assert.Equal(t, "first", logs[2].Message)
	assert.NotEmpty(t, logs[0].Id)

	again, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, logs[0].Id, again[0].Id)

	warns, err := l.GetLogs("WARN", 10, 0)
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, "v", warns[0].Details["k"])

	entry, err := l.GetLogById(logs[1].Id)
	require.NoError(t, err)
	assert.Equal(t, "second", entry.Message)

	_, err = l.GetLogById("nope")
	assert.ErrorIs(t, err, ErrLogNotFound)
}

func TestGetLogs_MissingFileAndOffsets(t *testing.T) {
	l := NewIsolatedLogger(filepath.Join(t.TempDir(), "never-written.log"))

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)

	path := filepath.Join(t.TempDir(), "mixed.log")
	require.NoError(t, os.WriteFile(path, []byte("not json\n{\"level\":\"INFO\",\"message\":\"only\"}\n"), 0o644))
	l = NewIsolatedLogger(path)

	logs, err = l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "only", logs[0].Message)

	logs, err = l.GetLogs("", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Info("X", "ignored", nil)

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
