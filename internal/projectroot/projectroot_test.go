package projectroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_ConfigMarker(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "services", "api")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".planscan.yaml"), []byte("version: 1\n"), 0o644))

	got, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFind_GitMarker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	file := filepath.Join(root, "docs", "plan.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	got, err := Find(file)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFind_Missing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
