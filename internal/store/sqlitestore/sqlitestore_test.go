package sqlitestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/fieldlist/internal/field"
	"github.com/idilsaglam/fieldlist/internal/model"
)

func openTest(t *testing.T, dbPath, entry, fieldID string) *Store {
	t.Helper()
	s, err := Open(dbPath, entry, fieldID)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenValidatesArgs(t *testing.T) {
	_, err := Open("  ", "e", "f")
	assert.Error(t, err)
	_, err = Open(filepath.Join(t.TempDir(), "x.db"), "", "f")
	assert.Error(t, err)
}

func TestUnsetFieldIsNil(t *testing.T) {
	s := openTest(t, filepath.Join(t.TempDir(), "f.db"), "entry-1", "items")

	v, err := s.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestControllerWritesAndRevisions(t *testing.T) {
	s := openTest(t, filepath.Join(t.TempDir(), "f.db"), "entry-1", "items")
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	c := field.New(s)
	require.NoError(t, c.Initialize())
	require.NoError(t, c.Append())
	require.NoError(t, c.EditField(0, model.FieldTitle, "A"))
	require.NoError(t, c.Append())
	require.NoError(t, c.MoveItem(1, 0))

	v, err := s.Value()
	require.NoError(t, err)
	items, err := field.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, []model.Item{{}, {Title: "A"}}, items)

	revs, err := s.Revisions(0)
	require.NoError(t, err)
	require.Len(t, revs, 4)
	assert.Equal(t, []model.Item{{}, {Title: "A"}}, revs[0].Items)
	assert.Equal(t, []model.Item{{}}, revs[3].Items)
	assert.True(t, revs[0].CreatedAt.After(revs[3].CreatedAt))

	seen := map[string]bool{}
	for _, r := range revs {
		assert.NotEmpty(t, r.ID)
		assert.False(t, seen[r.ID], "duplicate revision id")
		seen[r.ID] = true
	}

	latest, err := s.Revisions(1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, revs[0].ID, latest[0].ID)
}

func TestFieldsAreIsolated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "f.db")
	a := openTest(t, dbPath, "entry-1", "items")
	b := openTest(t, dbPath, "entry-2", "items")

	require.NoError(t, a.SetValue([]model.Item{{Title: "only in a"}}))

	v, err := b.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	revs, err := b.Revisions(0)
	require.NoError(t, err)
	assert.Empty(t, revs)
}

func TestMalformedStoredValue(t *testing.T) {
	s := openTest(t, filepath.Join(t.TempDir(), "f.db"), "entry-1", "items")
	_, err := s.db.Exec(
		`INSERT INTO field_values (entry_id, field_id, value, updated_at) VALUES (?, ?, ?, ?)`,
		"entry-1", "items", "{not json", "2026-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	_, err = s.Value()
	assert.ErrorIs(t, err, field.ErrMalformedValue)

	c := field.New(s)
	require.NoError(t, c.Initialize())
	assert.Empty(t, c.Items())
}
