package lsgrid

import (
	"errors"
	"fmt"
	"path/filepath"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalidPath is wrapped by every error returned when the directory
	// to be listed cannot be opened or is not a directory.
	ErrInvalidPath = errors.New("invalid path")
	// ErrNonUTF8Name reports a file name that is not valid UTF-8.
	ErrNonUTF8Name = errors.New("name is not valid UTF-8")
	// ErrUnprintableName reports a file name containing control characters.
	ErrUnprintableName = errors.New("name contains control characters")
)

// Entry is a single name found in a listed directory.
type Entry struct {
	Name string
	Dir  string
}

// Path returns the entry's name joined to the directory it was found in.
func (e Entry) Path() string {
	return filepath.Join(e.Dir, e.Name)
}

// PathError records a directory that could not be listed. It matches both
// ErrInvalidPath and the underlying operating system error with errors.Is.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v %s: %v", ErrInvalidPath, e.Path, e.Err)
}

func (e *PathError) Unwrap() []error {
	return []error{ErrInvalidPath, e.Err}
}

// NameError records an entry whose name cannot be displayed as is.
type NameError struct {
	Dir  string
	Name string
	Err  error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%q in %s: %v", e.Name, e.Dir, e.Err)
}

func (e *NameError) Unwrap() error {
	return e.Err
}

// CheckName returns a *NameError if the entry's name is not valid UTF-8 or
// contains control characters, and nil otherwise.
func CheckName(e Entry) error {
	if !utf8.ValidString(e.Name) {
		return &NameError{Dir: e.Dir, Name: e.Name, Err: ErrNonUTF8Name}
	}
	for _, r := range e.Name {
		if unicode.IsControl(r) {
			return &NameError{Dir: e.Dir, Name: e.Name, Err: ErrUnprintableName}
		}
	}
	return nil
}

// NamePolicy decides what Sanitize does with names that fail CheckName.
type NamePolicy int

const (
	// KeepRaw leaves the name untouched; its bytes are written as they are.
	KeepRaw NamePolicy = iota
	// SkipInvalid drops the entry from the listing.
	SkipInvalid
	// QuoteInvalid replaces the name with a Bash-quoted rendering such as
	// $'a\nb'.
	QuoteInvalid
)

func (p NamePolicy) String() string {
	switch p {
	case KeepRaw:
		return "keep"
	case SkipInvalid:
		return "skip"
	case QuoteInvalid:
		return "quote"
	}
	return fmt.Sprintf("NamePolicy(%d)", int(p))
}
