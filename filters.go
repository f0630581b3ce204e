package lsgrid

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/itchyny/gojq"
	"mvdan.cc/sh/v3/syntax"
)

// EachEntry calls the specified function for each entry in the listing, and
// keeps only the entries for which it returns true. The filter may set the
// listing's error status, in which case the remaining entries are not visited.
func (l *Listing) EachEntry(keep func(Entry) bool) *Listing {
	if l == nil || l.Error() != nil {
		return l
	}
	kept := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if keep(e) {
			kept = append(kept, e)
		}
		if l.Error() != nil {
			return l
		}
	}
	return l.WithEntries(kept)
}

// Visible drops entries whose name begins with a dot, as ls does without -a.
// An empty name has no first character, so it is kept.
func (l *Listing) Visible() *Listing {
	return l.EachEntry(func(e Entry) bool {
		return !strings.HasPrefix(e.Name, ".")
	})
}

// Sort orders the entries by comparing their names byte by byte. No locale or
// case folding is applied.
func (l *Listing) Sort() *Listing {
	if l == nil || l.Error() != nil {
		return l
	}
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Name < l.entries[j].Name
	})
	return l
}

// Match keeps only entries whose name contains the specified string.
func (l *Listing) Match(s string) *Listing {
	return l.EachEntry(func(e Entry) bool {
		return strings.Contains(e.Name, s)
	})
}

// Reject keeps only entries whose name does not contain the specified string.
func (l *Listing) Reject(s string) *Listing {
	return l.EachEntry(func(e Entry) bool {
		return !strings.Contains(e.Name, s)
	})
}

// MatchRegexp keeps only entries whose name matches the specified compiled
// regular expression.
func (l *Listing) MatchRegexp(re *regexp.Regexp) *Listing {
	return l.EachEntry(func(e Entry) bool {
		return re.MatchString(e.Name)
	})
}

// RejectRegexp keeps only entries whose name doesn't match the specified
// compiled regular expression.
func (l *Listing) RejectRegexp(re *regexp.Regexp) *Listing {
	return l.EachEntry(func(e Entry) bool {
		return !re.MatchString(e.Name)
	})
}

// JQ keeps only entries for which the jq query produces a true value. The
// query's input is an object with the fields "name", "dir", and "path", so
// for example:
//
//	l.JQ(`.name | endswith(".go")`)
//
// Only the first result counts; null, false, and no result at all reject the
// entry. If the query cannot be parsed, or fails on any entry, the listing's
// error status is set.
func (l *Listing) JQ(query string) *Listing {
	if l == nil || l.Error() != nil {
		return l
	}
	q, err := gojq.Parse(query)
	if err != nil {
		return l.WithError(err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return l.WithError(err)
	}
	return l.EachEntry(func(e Entry) bool {
		iter := code.Run(map[string]any{
			"name": e.Name,
			"dir":  e.Dir,
			"path": e.Path(),
		})
		v, ok := iter.Next()
		if !ok {
			return false
		}
		if err, ok := v.(error); ok {
			l.SetError(fmt.Errorf("jq %q on %q: %w", query, e.Name, err))
			return false
		}
		return v != nil && v != false
	})
}

// Sanitize applies the policy to every entry whose name fails CheckName.
// Names that pass are left alone. Entries dropped by SkipInvalid are logged at
// debug level.
func (l *Listing) Sanitize(policy NamePolicy) *Listing {
	if l == nil || l.Error() != nil || policy == KeepRaw {
		return l
	}
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		err := CheckName(e)
		if err == nil {
			out = append(out, e)
			continue
		}
		switch policy {
		case SkipInvalid:
			l.logger().WithError(err).Debug("skipping entry")
			continue
		case QuoteInvalid:
			quoted, qerr := syntax.Quote(e.Name, syntax.LangBash)
			if qerr != nil {
				l.logger().WithError(qerr).WithField("name", e.Name).Debug("cannot quote name, keeping raw bytes")
				break
			}
			e.Name = quoted
		}
		out = append(out, e)
	}
	return l.WithEntries(out)
}
