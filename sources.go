package lsgrid

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// DefaultDir is listed when Dir is given an empty path.
const DefaultDir = "./"

// Dir returns a listing of the names in the specified directory, in the order
// the operating system returns them. See (*Listing).Dir.
func Dir(path string) *Listing {
	return NewListing().Dir(path)
}

// Dir replaces the listing's entries with the names in the specified
// directory, in the order the operating system returns them. An empty path
// means DefaultDir. If the path cannot be opened, or is not a directory, the
// listing's error status is set to a *PathError. If reading stops part way
// through, the names read so far are kept and the failure is logged rather
// than set as the error status.
func (l *Listing) Dir(path string) *Listing {
	if l == nil || l.Error() != nil {
		return l
	}
	if path == "" {
		path = DefaultDir
	}
	f, err := os.Open(path)
	if err != nil {
		return l.WithError(&PathError{Path: path, Err: err})
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return l.WithError(&PathError{Path: path, Err: err})
	}
	if !info.IsDir() {
		return l.WithError(&PathError{Path: path, Err: syscall.ENOTDIR})
	}
	names, err := f.Readdirnames(-1)
	if err != nil && !errors.Is(err, io.EOF) {
		l.logger().WithError(err).WithField("path", path).Warnf("listing incomplete, kept %d entries", len(names))
	}
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name, Dir: path})
	}
	return l.WithEntries(entries)
}

// Names returns a listing containing the supplied names, in the order given.
// The entries have no origin directory.
func Names(names ...string) *Listing {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{Name: name})
	}
	return NewListing().WithEntries(entries)
}
