package model

// Item is one record of the edited list.
// Items have no identity of their own; their position in the list is the identity.
type Item struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Hide    bool   `json:"hide" yaml:"hide"`
}

// Field names an editable text field of an Item.
type Field string

const (
	FieldTitle   Field = "title"
	FieldContent Field = "content"
)

// DefaultItem is what Append adds.
func DefaultItem() Item {
	return Item{Title: "", Content: "", Hide: false}
}

// Clone returns a copy of items that shares nothing with the input.
// A nil input yields an empty, non-nil slice so it serializes as [].
func Clone(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Stats counts hidden and visible items.
func Stats(items []Item) (visible, hidden int) {
	for _, it := range items {
		if it.Hide {
			hidden++
		} else {
			visible++
		}
	}
	return
}
