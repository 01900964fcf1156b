package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titled(titles ...string) []Item {
	out := make([]Item, 0, len(titles))
	for _, t := range titles {
		out = append(out, Item{Title: t})
	}
	return out
}

func titlesOf(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestEditField(t *testing.T) {
	in := []Item{
		{Title: "A", Content: "a"},
		{Title: "B", Content: "b", Hide: true},
		{Title: "C", Content: "c"},
	}

	out, err := EditField(in, 1, FieldTitle, "bee")
	require.NoError(t, err)
	require.Len(t, out, len(in))
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, Item{Title: "bee", Content: "b", Hide: true}, out[1])
	assert.Equal(t, in[2], out[2])
	assert.Equal(t, "B", in[1].Title, "input must not be modified")

	out, err = EditField(in, 2, FieldContent, "")
	require.NoError(t, err)
	assert.Equal(t, Item{Title: "C"}, out[2])
}

func TestEditFieldErrors(t *testing.T) {
	in := titled("A")

	for _, i := range []int{-1, 1, 5} {
		_, err := EditField(in, i, FieldTitle, "x")
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", i)
	}

	_, err := EditField(in, 0, Field("hide"), "x")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = EditField(nil, 0, FieldTitle, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestToggleHideIsIdempotent(t *testing.T) {
	in := titled("A", "B")

	once, err := ToggleHide(in, 0, true)
	require.NoError(t, err)
	twice, err := ToggleHide(once, 0, true)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.True(t, twice[0].Hide)
	assert.False(t, twice[1].Hide)
	assert.False(t, in[0].Hide)

	_, err = ToggleHide(in, 2, true)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestAppend(t *testing.T) {
	for _, in := range [][]Item{nil, {}, titled("A"), titled("A", "B", "C")} {
		out := Append(in)
		require.Len(t, out, len(in)+1)
		assert.Equal(t, DefaultItem(), out[len(out)-1])
		assert.Equal(t, Item{}, out[len(out)-1])
		for i := range in {
			assert.Equal(t, in[i], out[i])
		}
	}
}

func TestAppendDoesNotAliasInput(t *testing.T) {
	in := make([]Item, 1, 4)
	in[0] = Item{Title: "A"}

	a := Append(in)
	b := Append(in)
	a[1].Title = "changed"

	assert.Equal(t, "", b[1].Title)
}

func TestRemoveAt(t *testing.T) {
	in := titled("A", "B", "C", "D")

	cases := []struct {
		index int
		want  []string
	}{
		{0, []string{"B", "C", "D"}},
		{1, []string{"A", "C", "D"}},
		{3, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		out, err := RemoveAt(in, tc.index)
		require.NoError(t, err)
		assert.Equal(t, tc.want, titlesOf(out))
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, titlesOf(in))

	_, err := RemoveAt(in, 4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = RemoveAt(in, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestRemoveAtByPositionNotValue(t *testing.T) {
	dup := Item{Title: "same", Content: "same"}
	in := []Item{dup, {Title: "other"}, dup}

	out, err := RemoveAt(in, 2)
	require.NoError(t, err)
	assert.Equal(t, []Item{dup, {Title: "other"}}, out)
}

func TestAppendThenRemoveRestores(t *testing.T) {
	in := []Item{{Title: "A", Content: "", Hide: false}}

	grown := Append(in)
	assert.Equal(t, []Item{{Title: "A"}, {}}, grown)

	back, err := RemoveAt(grown, 1)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestMoveItem(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"first to last", 0, 2, []string{"B", "C", "A"}},
		{"last to first", 2, 0, []string{"C", "A", "B"}},
		{"down one", 0, 1, []string{"B", "A", "C"}},
		{"up one", 2, 1, []string{"A", "C", "B"}},
		{"same index", 1, 1, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := titled("A", "B", "C")
			out, err := MoveItem(in, tc.from, tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.want, titlesOf(out))
			assert.Equal(t, []string{"A", "B", "C"}, titlesOf(in))
		})
	}
}

func TestMoveItemRoundTrip(t *testing.T) {
	in := titled("A", "B", "C", "D", "E")
	for i := range in {
		for j := range in {
			moved, err := MoveItem(in, i, j)
			require.NoError(t, err)
			assert.Equal(t, in[i], moved[j])
			assert.ElementsMatch(t, in, moved)

			back, err := MoveItem(moved, j, i)
			require.NoError(t, err)
			assert.Equal(t, in, back, "move %d->%d->%d", i, j, i)
		}
	}
}

func TestMoveItemShiftsByAtMostOne(t *testing.T) {
	in := titled("A", "B", "C", "D", "E")
	moved, err := MoveItem(in, 1, 3)
	require.NoError(t, err)

	pos := map[string]int{}
	for i, it := range moved {
		pos[it.Title] = i
	}
	for i, it := range in {
		if i == 1 {
			continue
		}
		d := pos[it.Title] - i
		assert.True(t, d >= -1 && d <= 1, "%s moved by %d", it.Title, d)
	}
}

func TestMoveItemOutOfRange(t *testing.T) {
	in := titled("A", "B")
	for _, tc := range [][2]int{{-1, 0}, {0, 2}, {2, 0}, {0, -1}} {
		_, err := MoveItem(in, tc[0], tc[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "%v", tc)
	}
}

func TestStats(t *testing.T) {
	v, h := Stats([]Item{{Hide: true}, {}, {}, {Hide: true}, {}})
	assert.Equal(t, 3, v)
	assert.Equal(t, 2, h)
}
