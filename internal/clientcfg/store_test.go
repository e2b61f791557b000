package clientcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firelift/firelift/internal/appconfig"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	t.Setenv(EnvConfigDir, t.TempDir())
	store, err := NewStore()
	require.NoError(t, err)
	return store
}

func TestStore_LoadEmpty(t *testing.T) {
	store := testStore(t)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestStore_SaveLoadClear(t *testing.T) {
	store := testStore(t)

	saved := appconfig.Config{
		APIKey:     "X",
		AuthDomain: "a.b",
		ProjectID:  "p",
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, *loaded)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestStore_RequesterIDStable(t *testing.T) {
	store := testStore(t)

	first, err := store.RequesterID()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := store.RequesterID()
	require.NoError(t, err)
	assert.Equal(t, first, second, "identity must be reused across sessions")
}

func TestStore_RequesterIDSurvivesClear(t *testing.T) {
	store := testStore(t)

	id, err := store.RequesterID()
	require.NoError(t, err)

	require.NoError(t, store.Save(appconfig.Config{APIKey: "X"}))
	require.NoError(t, store.Clear())

	again, err := store.RequesterID()
	require.NoError(t, err)
	assert.Equal(t, id, again)
}
