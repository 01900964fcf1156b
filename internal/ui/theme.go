package ui

import "strings"

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name                                   string
	Mono                                   bool
	Title, Muted, Accent, Success, Error   string
	Pending                                string
	BoxShown, BoxHidden                    string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	Handle, Missing                        string
}

// ThemeNamed returns the named theme; unknown names get "classic".
func ThemeNamed(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			BoxShown: "◻", BoxHidden: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			Handle: "⣿", Missing: "•",
		}
	case "mono":
		return Theme{
			Name: "mono", Mono: true,
			BoxShown: "[ ]", BoxHidden: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			Handle: "=", Missing: "-",
		}
	default:
		return Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow,
			BoxShown: "☐", BoxHidden: "☑",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			Handle: "⠿", Missing: "•",
		}
	}
}
