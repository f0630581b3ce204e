package lsgrid

import (
	"io"
	"strings"
)

// Entries returns the listing's entries, or an error if the listing's error
// status is set.
func (l *Listing) Entries() ([]Entry, error) {
	if l == nil {
		return nil, nil
	}
	if l.Error() != nil {
		return nil, l.Error()
	}
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}

// Names returns the names of the listing's entries, in order, or an error if
// the listing's error status is set.
func (l *Listing) Names() ([]string, error) {
	if l == nil {
		return nil, nil
	}
	if l.Error() != nil {
		return nil, l.Error()
	}
	names := make([]string, len(l.entries))
	for i, e := range l.entries {
		names[i] = e.Name
	}
	return names, nil
}

// String returns the listing's names one per line, or an error if the
// listing's error status is set.
func (l *Listing) String() (string, error) {
	names, err := l.Names()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Stdout writes the listing's names to its standard output one per line. It
// returns the number of bytes successfully written, plus a non-nil error if
// the write failed. If the listing has error status, Stdout returns zero plus
// the existing error.
func (l *Listing) Stdout() (int, error) {
	if l == nil {
		return 0, nil
	}
	s, err := l.String()
	if err != nil {
		return 0, err
	}
	return io.WriteString(l.output(), s)
}

// Grid arranges the listing's names into columns fitting width, using the
// listing's layout.
func (l *Listing) Grid(width int) (Grid, error) {
	names, err := l.Names()
	if err != nil {
		return Grid{}, err
	}
	if l == nil {
		return Grid{}, nil
	}
	return l.layout.Arrange(names, width), nil
}

// Columns writes the listing to its standard output in as many columns as fit
// the width reported by src. If the width is unknown, one name is written per
// line. An empty listing writes nothing. Columns returns the number of bytes
// written, or the listing's error status if it is set.
func (l *Listing) Columns(src WidthSource) (int64, error) {
	if l == nil {
		return 0, nil
	}
	g, err := l.Grid(probe(src))
	if err != nil {
		return 0, err
	}
	n, err := g.WriteTo(l.output())
	if err != nil {
		l.SetError(err)
	}
	return n, err
}
