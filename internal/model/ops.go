package model

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownField    = errors.New("unknown field")
)

// Every operation here returns a fresh slice and leaves its input alone.

func checkIndex(items []Item, i int) error {
	if i < 0 || i >= len(items) {
		return fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(items), i)
	}
	return nil
}

// EditField replaces the title or content of the item at i.
func EditField(items []Item, i int, f Field, v string) ([]Item, error) {
	if err := checkIndex(items, i); err != nil {
		return nil, err
	}
	out := Clone(items)
	switch f {
	case FieldTitle:
		out[i].Title = v
	case FieldContent:
		out[i].Content = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return out, nil
}

// ToggleHide sets the hide flag of the item at i to hide.
func ToggleHide(items []Item, i int, hide bool) ([]Item, error) {
	if err := checkIndex(items, i); err != nil {
		return nil, err
	}
	out := Clone(items)
	out[i].Hide = hide
	return out, nil
}

// Append adds a DefaultItem at the end.
func Append(items []Item) []Item {
	out := make([]Item, len(items), len(items)+1)
	copy(out, items)
	return append(out, DefaultItem())
}

// RemoveAt drops the item at i, keeping the others in order.
func RemoveAt(items []Item, i int) ([]Item, error) {
	if err := checkIndex(items, i); err != nil {
		return nil, err
	}
	out := make([]Item, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out, nil
}

// MoveItem relocates the item at from to position to. Items in between
// shift by one towards from. This is a move, not a swap.
func MoveItem(items []Item, from, to int) ([]Item, error) {
	if err := checkIndex(items, from); err != nil {
		return nil, fmt.Errorf("move from: %w", err)
	}
	if err := checkIndex(items, to); err != nil {
		return nil, fmt.Errorf("move to: %w", err)
	}
	out := Clone(items)
	if from == to {
		return out, nil
	}
	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out, nil
}
