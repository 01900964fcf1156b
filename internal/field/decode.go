package field

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/fieldlist/internal/model"
)

// Decode turns a raw stored value into items.
//
// Stores hand back whatever they parsed (JSON or YAML decode into
// []any / map[string]any). A nil value means the field was never set.
// Anything that is not a list decodes to an empty list. Inside a list,
// entries that are not objects, or whose title/content/hide have the wrong
// type, are dropped. The returned error lists what was dropped; items are
// always usable even when err != nil.
func Decode(v any) ([]model.Item, error) {
	switch raw := v.(type) {
	case nil:
		return []model.Item{}, nil
	case []model.Item:
		return model.Clone(raw), nil
	case []any:
		items := make([]model.Item, 0, len(raw))
		var problems []string
		for i, el := range raw {
			it, err := decodeItem(el)
			if err != nil {
				problems = append(problems, fmt.Sprintf("[%d] %v", i, err))
				continue
			}
			items = append(items, it)
		}
		if len(problems) > 0 {
			return items, fmt.Errorf("%w: dropped %s", ErrMalformedValue, strings.Join(problems, "; "))
		}
		return items, nil
	default:
		return []model.Item{}, fmt.Errorf("%w: expected a list, got %T", ErrMalformedValue, v)
	}
}

func decodeItem(v any) (model.Item, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return model.Item{}, fmt.Errorf("expected an object, got %T", v)
	}
	var it model.Item
	if t, ok := obj["title"]; ok && t != nil {
		s, ok := t.(string)
		if !ok {
			return model.Item{}, fmt.Errorf("title: expected string, got %T", t)
		}
		it.Title = s
	}
	if c, ok := obj["content"]; ok && c != nil {
		s, ok := c.(string)
		if !ok {
			return model.Item{}, fmt.Errorf("content: expected string, got %T", c)
		}
		it.Content = s
	}
	if h, ok := obj["hide"]; ok && h != nil {
		b, ok := h.(bool)
		if !ok {
			return model.Item{}, fmt.Errorf("hide: expected bool, got %T", h)
		}
		it.Hide = b
	}
	return it, nil
}
