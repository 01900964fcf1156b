// Package field holds the list state controller: the single owner of the
// edited item list and the only path through which it changes.
package field

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/idilsaglam/fieldlist/internal/model"
)

var (
	ErrNotReady       = errors.New("controller not initialized")
	ErrMalformedValue = errors.New("malformed field value")
)

// Store is the field's store of record.
//
// Value returns the current raw value, nil when the field is unset.
// SetValue receives the complete list after every change; the controller
// does not wait on, retry or roll back a failed write.
type Store interface {
	Value() (any, error)
	SetValue(items []model.Item) error
}

// Controller owns the in-memory list. Every mutation builds a new list,
// replaces the held one and forwards it to the Store in one step.
type Controller struct {
	mu      sync.Mutex
	store   Store
	log     *slog.Logger
	items   []model.Item
	ready   bool
	commits int
}

type Option func(*Controller)

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Initialize reads the store once and enters the ready state.
// A missing or malformed value becomes an empty (or partially recovered)
// list; only a failed read is returned.
func (c *Controller) Initialize() error {
	raw, err := c.store.Value()
	if err != nil {
		if !errors.Is(err, ErrMalformedValue) {
			return fmt.Errorf("read field: %w", err)
		}
		c.log.Warn("field value unreadable, starting empty", "err", err)
		raw = nil
	}
	items, err := Decode(raw)
	if err != nil {
		c.log.Warn("field value degraded", "err", err, "kept", len(items))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.ready = true
	c.log.Debug("field initialized", "items", len(items))
	return nil
}

// Items returns a copy of the current list.
func (c *Controller) Items() []model.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.Clone(c.items)
}

func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Commits reports how many lists have been forwarded to the store.
func (c *Controller) Commits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commits
}

func (c *Controller) EditField(i int, f model.Field, v string) error {
	return c.apply("edit "+string(f), func(cur []model.Item) ([]model.Item, error) {
		return model.EditField(cur, i, f, v)
	})
}

func (c *Controller) ToggleHide(i int, hide bool) error {
	return c.apply("toggle hide", func(cur []model.Item) ([]model.Item, error) {
		return model.ToggleHide(cur, i, hide)
	})
}

func (c *Controller) Append() error {
	return c.apply("append", func(cur []model.Item) ([]model.Item, error) {
		return model.Append(cur), nil
	})
}

func (c *Controller) RemoveAt(i int) error {
	return c.apply("remove", func(cur []model.Item) ([]model.Item, error) {
		return model.RemoveAt(cur, i)
	})
}

// MoveItem relocates the item at from to to. Equal in-range indices
// change nothing and write nothing.
func (c *Controller) MoveItem(from, to int) error {
	return c.apply("move", func(cur []model.Item) ([]model.Item, error) {
		next, err := model.MoveItem(cur, from, to)
		if err != nil {
			return nil, err
		}
		if from == to {
			return nil, nil
		}
		return next, nil
	})
}

// apply runs op against the current list and commits the result while
// holding the lock, so no caller sees local state ahead of the store.
// A nil list with a nil error means nothing changed.
func (c *Controller) apply(name string, op func([]model.Item) ([]model.Item, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready {
		return ErrNotReady
	}
	next, err := op(c.items)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if next == nil {
		return nil
	}
	c.commit(next)
	c.log.Debug("field committed", "op", name, "items", len(next))
	return nil
}

func (c *Controller) commit(next []model.Item) {
	c.items = next
	c.commits++
	if err := c.store.SetValue(model.Clone(next)); err != nil {
		c.log.Warn("field write failed", "err", err, "items", len(next))
	}
}
