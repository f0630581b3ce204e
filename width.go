package lsgrid

import (
	"os"

	"golang.org/x/term"
)

// A WidthSource reports the number of columns available for output. The
// boolean result is false when the width is not known.
type WidthSource interface {
	Width() (int, bool)
}

// FixedWidth is a WidthSource that always reports the same width. Zero or
// negative values are reported as unknown.
type FixedWidth int

// Width implements WidthSource.
func (w FixedWidth) Width() (int, bool) {
	if w <= 0 {
		return 0, false
	}
	return int(w), true
}

type terminalWidth struct {
	f *os.File
}

// TerminalWidth returns a WidthSource that asks the terminal attached to f
// for its size each time it is called. If f is not a terminal, or the query
// fails, the width is unknown.
func TerminalWidth(f *os.File) WidthSource {
	return terminalWidth{f: f}
}

func (t terminalWidth) Width() (int, bool) {
	if t.f == nil {
		return 0, false
	}
	fd := int(t.f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

func probe(src WidthSource) int {
	if src == nil {
		return 0
	}
	w, ok := src.Width()
	if !ok {
		return 0
	}
	return w
}
