package sessionfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcenter/portal-api/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestSaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	user := &model.User{
		ID:    uuid.New(),
		Name:  "Admin User",
		Email: "admin@medicalcenter.com",
		Role:  model.RoleAdmin,
	}
	require.NoError(t, store.Save(user))
	assert.True(t, store.Exists())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, user.ID, loaded.ID)
	assert.Equal(t, user.Email, loaded.Email)
	assert.Equal(t, model.RoleAdmin, loaded.Role)
}

func TestSaveUsesFixedKey(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(&model.User{ID: uuid.New(), Email: "a@b.com", Role: model.RolePatient}))

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)

	var record map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Contains(t, record, Key)
	assert.Len(t, record, 1)
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
	assert.False(t, store.Exists())
}

func TestLoadCorruptFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.path, []byte("{not json"), 0o600))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(&model.User{ID: uuid.New(), Email: "a@b.com", Role: model.RoleDoctor}))
	require.NoError(t, store.Clear())
	assert.False(t, store.Exists())

	require.NoError(t, store.Clear())
}

func TestSaveReplacesPreviousRecord(t *testing.T) {
	store := newTestStore(t)

	first := &model.User{ID: uuid.New(), Email: "first@b.com", Role: model.RoleDoctor}
	second := &model.User{ID: uuid.New(), Email: "second@b.com", Role: model.RolePatient}

	require.NoError(t, store.Save(first))
	require.NoError(t, store.Save(second))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, second.Email, loaded.Email)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "dir", "session.json"))

	require.NoError(t, store.Save(&model.User{ID: uuid.New(), Email: "a@b.com", Role: model.RoleAdmin}))
	assert.True(t, store.Exists())
}
