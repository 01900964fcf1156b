// Package sortable is a keyboard drag-to-reorder gesture for a list of n
// rows. A drag starts on a row's handle, moves over the list and on release
// reports exactly one SortEndMsg. It never touches the list itself.
package sortable

import tea "github.com/charmbracelet/bubbletea"

// SortEndMsg is sent once when a drag is released.
type SortEndMsg struct {
	OldIndex int
	NewIndex int
}

// Drag tracks one gesture. The zero value is idle.
type Drag struct {
	active bool
	from   int
	to     int
	n      int
}

// Begin starts dragging the row at index in a list of n rows.
// Out-of-range indices are ignored.
func (d *Drag) Begin(index, n int) {
	if index < 0 || index >= n {
		return
	}
	*d = Drag{active: true, from: index, to: index, n: n}
}

func (d Drag) Active() bool { return d.active }

// From is where the dragged row started.
func (d Drag) From() int { return d.from }

// Over is the row the dragged row would land on if released now.
func (d Drag) Over() int { return d.to }

// Move shifts the drop position by delta, clamped to the list.
func (d *Drag) Move(delta int) {
	if !d.active {
		return
	}
	d.to += delta
	if d.to < 0 {
		d.to = 0
	}
	if d.to > d.n-1 {
		d.to = d.n - 1
	}
}

// Release ends the gesture and returns the command that reports it.
// Releasing an idle drag returns nil.
func (d *Drag) Release() tea.Cmd {
	if !d.active {
		return nil
	}
	msg := SortEndMsg{OldIndex: d.from, NewIndex: d.to}
	*d = Drag{}
	return func() tea.Msg { return msg }
}

// Cancel ends the gesture without reporting anything.
func (d *Drag) Cancel() { *d = Drag{} }
