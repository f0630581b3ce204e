// Package lsgrid lists directories the way ls does on a terminal: hidden
// entries dropped, names sorted byte-wise, and the result laid out in as
// many columns as the terminal width allows.
//
// Most operations return a *Listing, so that operations can be chained:
//
//	lsgrid.Dir("/tmp").Visible().Sort().Columns(lsgrid.TerminalWidth(os.Stdout))
//
// If any operation results in an error, the listing's Error() method will
// return that error, and all further filters will be no-ops. Sinks return the
// error instead of writing anything. Thus you can chain a whole series of
// operations without checking the error status at each stage:
//
//	l := lsgrid.Dir("doesnt_exist")
//	names, err := l.Visible().Sort().Names() // names is nil
//	fmt.Println(err)
//
// Output: invalid path doesnt_exist: open doesnt_exist: no such file or directory
package lsgrid

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Listing represents an ordered sequence of directory entries with an
// associated error status.
type Listing struct {
	entries []Entry
	err     error
	stdout  io.Writer
	log     logrus.FieldLogger
	layout  Layout
}

// NewListing returns a pointer to a new empty listing, writing to os.Stdout
// and logging through the standard logrus logger.
func NewListing() *Listing {
	return &Listing{
		stdout: os.Stdout,
		log:    logrus.StandardLogger(),
		layout: DefaultLayout,
	}
}

// Error returns the last error returned by any listing operation, or nil
// otherwise.
func (l *Listing) Error() error {
	if l == nil {
		return nil
	}
	return l.err
}

// SetError sets the listing's error status to the specified error.
func (l *Listing) SetError(err error) {
	if l != nil {
		l.err = err
	}
}

// WithError sets the listing's error status to the specified error and
// returns the modified listing.
func (l *Listing) WithError(err error) *Listing {
	l.SetError(err)
	return l
}

// WithEntries replaces the listing's entries with the supplied ones.
func (l *Listing) WithEntries(entries []Entry) *Listing {
	if l == nil {
		return nil
	}
	l.entries = entries
	return l
}

// WithStdout takes an io.Writer, and associates the listing's standard output
// with that writer, instead of the default os.Stdout. This is primarily useful
// for testing.
func (l *Listing) WithStdout(w io.Writer) *Listing {
	if l == nil {
		return nil
	}
	l.stdout = w
	return l
}

// WithLogger sets the logger used to report entries that were skipped or
// could not be read.
func (l *Listing) WithLogger(log logrus.FieldLogger) *Listing {
	if l == nil {
		return nil
	}
	l.log = log
	return l
}

// WithLayout sets the column layout used by Grid and Columns.
func (l *Listing) WithLayout(layout Layout) *Listing {
	if l == nil {
		return nil
	}
	l.layout = layout
	return l
}

// Len returns the number of entries currently in the listing.
func (l *Listing) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

func (l *Listing) logger() logrus.FieldLogger {
	if l.log == nil {
		return logrus.StandardLogger()
	}
	return l.log
}

func (l *Listing) output() io.Writer {
	if l.stdout == nil {
		return os.Stdout
	}
	return l.stdout
}
