package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/fieldlist/internal/field"
	"github.com/idilsaglam/fieldlist/internal/model"
)

func TestMissingFileIsUnset(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "items.json"))
	require.NoError(t, err)

	v, err := s.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestBlankFileIsUnset(t *testing.T) {
	p := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(p, []byte("  \n"), 0o644))
	s, err := New(p)
	require.NoError(t, err)

	v, err := s.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestJSONRoundTripThroughController(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "items.json")
	s, err := New(p)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, s.Format)

	c := field.New(s)
	require.NoError(t, c.Initialize())
	require.NoError(t, c.Append())
	require.NoError(t, c.EditField(0, model.FieldTitle, "Intro"))
	require.NoError(t, c.ToggleHide(0, true))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"Intro","content":"","hide":true}]`, string(b))

	again := field.New(s)
	require.NoError(t, again.Initialize())
	assert.Equal(t, []model.Item{{Title: "Intro", Hide: true}}, again.Items())
}

func TestYAMLFormat(t *testing.T) {
	p := filepath.Join(t.TempDir(), "items.yml")
	s, err := New(p)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, s.Format)

	require.NoError(t, s.SetValue([]model.Item{{Title: "A", Content: "line one\nline two"}, {Title: "B"}}))

	v, err := s.Value()
	require.NoError(t, err)
	items, err := field.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, []model.Item{{Title: "A", Content: "line one\nline two"}, {Title: "B"}}, items)
}

func TestUnparseableFileIsMalformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"title":`), 0o644))
	s, err := New(p)
	require.NoError(t, err)

	_, err = s.Value()
	assert.ErrorIs(t, err, field.ErrMalformedValue)

	c := field.New(s)
	require.NoError(t, c.Initialize())
	assert.Empty(t, c.Items())
}

func TestSetValueNilWritesEmptyList(t *testing.T) {
	p := filepath.Join(t.TempDir(), "items.json")
	s, err := New(p)
	require.NoError(t, err)

	require.NoError(t, s.SetValue(nil))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestSetValueLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "items.json"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.SetValue([]model.Item{{Title: "x"}}))
	}
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "items.json", entries[0].Name())
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("a.YAML"))
	assert.Equal(t, FormatYAML, FormatFor("a.yml"))
	assert.Equal(t, FormatJSON, FormatFor("a.json"))
	assert.Equal(t, FormatJSON, FormatFor("noext"))
}
