package tui

import (
	"github.com/idilsaglam/fieldlist/internal/field"
	"github.com/idilsaglam/fieldlist/internal/model"
	"github.com/idilsaglam/fieldlist/internal/sortable"
)

// Row is one rendered item with its controls bound to the controller.
// Each action carries the row's own index.
type Row struct {
	Index int
	Item  model.Item

	SetTitle   func(string) error
	SetContent func(string) error
	SetHide    func(bool) error
	Remove     func() error
	BeginDrag  func()
}

// BuildRows derives one Row per item, in list order.
func BuildRows(ctrl *field.Controller, drag *sortable.Drag) []Row {
	items := ctrl.Items()
	rows := make([]Row, len(items))
	for i, it := range items {
		rows[i] = Row{
			Index: i,
			Item:  it,
			SetTitle: func(v string) error {
				return ctrl.EditField(i, model.FieldTitle, v)
			},
			SetContent: func(v string) error {
				return ctrl.EditField(i, model.FieldContent, v)
			},
			SetHide: func(hide bool) error {
				return ctrl.ToggleHide(i, hide)
			},
			Remove: func() error {
				return ctrl.RemoveAt(i)
			},
			BeginDrag: func() {
				drag.Begin(i, len(items))
			},
		}
	}
	return rows
}

// AddControl is the trailing "add new" control, outside the rows.
func AddControl(ctrl *field.Controller) func() error {
	return ctrl.Append
}

// Reorder turns a released drag into a move.
func Reorder(ctrl *field.Controller, msg sortable.SortEndMsg) error {
	return ctrl.MoveItem(msg.OldIndex, msg.NewIndex)
}
