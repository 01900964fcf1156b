package ui

import (
	"fmt"
	"io"
	"os"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

// ColorMode decides whether a Printer emits ANSI escapes.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Printer writes themed, one-shot CLI output (not the interactive editor).
type Printer struct {
	w     io.Writer
	theme Theme
	color bool
}

func NewPrinter(w io.Writer, theme string, mode ColorMode) *Printer {
	t := ThemeNamed(theme)
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorAuto:
		color = isTTY(w)
	}
	if t.Mono {
		color = false
	}
	return &Printer{w: w, theme: t, color: color}
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

func (p *Printer) Theme() Theme { return p.theme }

// C wraps s in color when the printer is colored.
func (p *Printer) C(color, s string) string {
	if !p.color || color == "" {
		return s
	}
	return color + s + reset
}

func (p *Printer) Println(s string) { fmt.Fprintln(p.w, s) }

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.w, p.C(p.theme.Success, symCheck+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.w, p.C(p.theme.Error, symCross+" "+msg))
}
