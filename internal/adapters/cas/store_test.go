package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cuv/internal/adapters/cas"
	"go.trai.ch/cuv/internal/core/domain"
)

func samplePlan(key string) domain.PlanInfo {
	return domain.PlanInfo{
		Key: key,
		Tasks: []domain.Task{
			{Name: domain.NewInternedString("M.o")},
			{Name: domain.NewInternedString("main.o"), Dependencies: domain.NewInternedStrings([]string{"M.o"})},
		},
		Unresolved: []domain.UnresolvedModule{{Module: "fmt", RequiredBy: []string{"main.o"}}},
		CreatedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plans")
	store := cas.NewStore()

	require.NoError(t, store.Put(dir, samplePlan("0123456789abcdef")))

	got, err := store.Get(dir, "0123456789abcdef")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, samplePlan("0123456789abcdef"), *got)

	assert.FileExists(t, filepath.Join(dir, "0123456789abcdef.json"))
}

func TestStore_GetMissing(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir(), "feedface")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Overwrite(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	first := samplePlan("aa")
	require.NoError(t, store.Put(dir, first))

	second := samplePlan("aa")
	second.Unresolved = nil
	require.NoError(t, store.Put(dir, second))

	got, err := store.Get(dir, "aa")
	require.NoError(t, err)
	assert.Empty(t, got.Unresolved)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_UnsafeKeyIsHashed(t *testing.T) {
	dir := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(dir, samplePlan("../escape")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Len(t, entries[0].Name(), 64+len(".json"))

	got, err := store.Get(dir, "../escape")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "../escape", got.Key)
}

func TestStore_CorruptPlan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abc.json"), []byte("{not json"), domain.FilePerm))

	_, err := cas.NewStore().Get(dir, "abc")
	require.ErrorIs(t, err, domain.ErrStoreUnmarshalFailed)
}

func TestStore_KeyMismatchIsMiss(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "abc.json"), []byte(`{"key":"def","tasks":[]}`), domain.FilePerm))

	got, err := cas.NewStore().Get(dir, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CreateFailure(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))

	err := cas.NewStore().Put(filepath.Join(blocker, "plans"), samplePlan("aa"))
	require.ErrorIs(t, err, domain.ErrStoreCreateFailed)
}
