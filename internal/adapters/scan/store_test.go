package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuv/internal/adapters/scan"
	"go.trai.ch/cuv/internal/core/domain"
)

const depsJSON = `{
  "revision": 0,
  "rules": [
    {
      "primary-output": "build/module_cache/M.pcm",
      "provides": [{"logical-name": "M", "source-path": "src/M.cppm", "is-interface": true}]
    },
    {
      "primary-output": "build/objects/main.o",
      "requires": [{"logical-name": "M"}, {"logical-name": "std"}]
    }
  ],
  "version": 1
}`

func TestStore_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deps.json")
	require.NoError(t, os.WriteFile(path, []byte(depsJSON), domain.FilePerm))

	doc, err := scan.NewStore().Load(path)
	require.NoError(t, err)

	require.Len(t, doc.Rules, 2)
	assert.Equal(t, "build/module_cache/M.pcm", doc.Rules[0].PrimaryOutput)
	assert.Equal(t, "std", doc.Rules[1].Requires[1].LogicalName)
}

func TestStore_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deps.json")
	store := scan.NewStore()

	original, err := scan.Decode([]byte(depsJSON))
	require.NoError(t, err)
	require.NoError(t, store.Save(path, original))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := scan.NewStore().Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, domain.ErrScanReadFailed)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"rules": [`), domain.FilePerm))
	_, err = scan.NewStore().Load(bad)
	require.ErrorIs(t, err, domain.ErrScanParseFailed)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"rules": [{"primary-output": ""}]}`), domain.FilePerm))
	_, err = scan.NewStore().Load(invalid)
	require.ErrorIs(t, err, domain.ErrMissingPrimaryOutput)
}
