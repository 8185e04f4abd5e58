package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/planscan/internal/roadmap"
)

func TestStore_ReadLastMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), ".planscan"))

	snap, err := store.ReadLast()
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestStore_WriteThenRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".planscan")
	store := NewStore(dir)

	doc := roadmap.Aggregate([]roadmap.Document{
		{Text: "# Phase 1: A\n- [x] a\n- [ ] b\n", Name: "a.md", RelativePath: "a.md"},
	})
	want := Snapshot{
		Root:          "/project",
		ParsedAt:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Documentation: doc,
	}
	require.NoError(t, store.WriteLast(want))

	got, err := store.ReadLast()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	require.NoError(t, store.Reset())
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_ReadLastCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "last-scan.json"), []byte("{not json"), 0o600))

	_, err := NewStore(dir).ReadLast()
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	before := roadmap.Aggregate([]roadmap.Document{
		{Text: "- [x] a\n- [ ] b\n- [ ] c\n- [ ] d\n", Name: "t.md", RelativePath: "t.md"},
	})
	after := roadmap.Aggregate([]roadmap.Document{
		{Text: "- [x] a\n- [x] b\n- [x] c\n- [ ] d\n", Name: "t.md", RelativePath: "t.md"},
	})

	d := Compare(&Snapshot{Documentation: before}, after)
	assert.Equal(t, 25.0, d.PreviousProgress)
	assert.Equal(t, 75.0, d.CurrentProgress)
	assert.Equal(t, 50.0, d.ProgressChange)
	assert.Equal(t, 2, d.NewlyCompleted())
	assert.Equal(t, 4, d.TotalNow)

	first := Compare(nil, after)
	assert.Equal(t, 75.0, first.ProgressChange)
	assert.Equal(t, 3, first.NewlyCompleted())
}
