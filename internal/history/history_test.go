package history

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "tassist", FileName), path)
}

func TestNew_SessionID(t *testing.T) {
	a := New(filepath.Join(t.TempDir(), FileName), 0)
	b := New(filepath.Join(t.TempDir(), FileName), 0)

	_, err := uuid.Parse(a.SessionID())
	require.NoError(t, err, "session id is a UUID")
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}

func TestHistory_AddAndRecent(t *testing.T) {
	h := New(filepath.Join(t.TempDir(), FileName), 10)

	h.Add("list")
	h.Add("   ")
	h.Add("  find alice  ")
	h.Add("open 1")

	assert.Equal(t, 3, h.Len(), "blank lines are skipped")
	assert.Equal(t, []string{"list", "find alice", "open 1"}, h.Lines())

	recent := h.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "find alice", recent[0].Line)
	assert.Equal(t, "open 1", recent[1].Line)
	assert.Equal(t, h.SessionID(), recent[1].SessionID)

	assert.Len(t, h.Recent(0), 3, "non-positive n returns everything")
	assert.Len(t, h.Recent(50), 3)
}

func TestHistory_Limit(t *testing.T) {
	h := New(filepath.Join(t.TempDir(), FileName), 3)
	for _, line := range []string{"a", "b", "c", "d", "e"} {
		h.Add(line)
	}
	assert.Equal(t, []string{"c", "d", "e"}, h.Lines())
}

func TestHistory_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	h := New(path, 10)
	h.now = func() time.Time { return fixed }
	h.Add("add n/Amy p/123 e/a@b.co s/A0000008H")
	h.Add("list")
	require.NoError(t, h.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded := New(path, 10)
	require.NoError(t, loaded.Load())
	entries := loaded.Recent(0)
	require.Len(t, entries, 2)
	assert.Equal(t, h.SessionID(), entries[0].SessionID)
	assert.True(t, fixed.Equal(entries[0].At))

	loaded.Add("exit")
	assert.NotEqual(t, entries[0].SessionID, loaded.Recent(1)[0].SessionID, "new lines use the new session")
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := New(filepath.Join(t.TempDir(), FileName), 10)
	require.NoError(t, h.Load())
	assert.Zero(t, h.Len())
}

func TestHistory_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	err := New(path, 10).Load()
	assert.ErrorContains(t, err, "failed to parse history")
}

func TestHistory_LoadAppliesLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	big := New(path, 10)
	for _, line := range []string{"a", "b", "c", "d"} {
		big.Add(line)
	}
	require.NoError(t, big.Save())

	small := New(path, 2)
	require.NoError(t, small.Load())
	assert.Equal(t, []string{"c", "d"}, small.Lines())
}

func TestHistory_ClearAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	h := New(path, 10)
	h.Add("list")
	h.Clear()
	assert.Zero(t, h.Len())
	require.NoError(t, h.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}
