// Package render presents a field's items the way a consumer of the field
// would see them: hidden items left out, each item a Markdown section.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/fieldlist/internal/model"
)

// Markdown builds the document for the visible items. Items without a
// title still get a section so their content is not lost.
func Markdown(items []model.Item) string {
	var b strings.Builder
	for _, it := range items {
		if it.Hide {
			continue
		}
		title := strings.TrimSpace(it.Title)
		if title == "" {
			title = "Untitled"
		}
		b.WriteString("## ")
		b.WriteString(title)
		b.WriteString("\n\n")
		if c := strings.TrimSpace(it.Content); c != "" {
			b.WriteString(c)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// Style picks the glamour style; "auto" follows the terminal background.
type Style string

const (
	StyleAuto  Style = "auto"
	StyleNoTTY Style = "notty"
	StyleDark  Style = "dark"
	StyleLight Style = "light"
)

// Terminal renders Markdown(items) for a terminal of the given width.
// When glamour fails the plain Markdown is returned.
func Terminal(items []model.Item, width int, style Style) string {
	doc := Markdown(items)
	if strings.TrimSpace(doc) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == StyleAuto || style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(string(style)))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return doc
	}
	rendered, err := r.Render(doc)
	if err != nil {
		return doc
	}
	return strings.TrimRight(rendered, "\n")
}
