// Package dates normalizes the textual date values FlowLogix stores in
// plain string columns. A value is one of three things: absent (empty or a
// known placeholder), a date in one of the supported layouts, or opaque
// text that merely lives in a date-typed field and must be preserved.
package dates

import (
	"strings"
	"time"
)

// StorageLayout is the dd.mm.yy form orders are stored and displayed in.
const StorageLayout = "02.01.06"

// ISOLayout is the yyyy-mm-dd form the API emits.
const ISOLayout = "2006-01-02"

// inputLayouts are tried in order; the first whole-string match wins.
var inputLayouts = [...]string{
	ISOLayout,
	StorageLayout,
	"02.01.2006",
	"02/01/2006",
}

// Clean trims whitespace and collapses the legacy "no value" placeholders
// to the empty string.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "—", s == "--", strings.EqualFold(s, "none"):
		return ""
	}
	return s
}

// Parse converts text into a date. The second return is false when the
// value is absent or not a date; that is a normal outcome, not an error.
func Parse(s string) (time.Time, bool) {
	s = Clean(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToStorage renders any supported date form as dd.mm.yy. Absent values
// become "". Non-empty text that is not a date is returned unchanged, so
// free-text values passing through a date-typed field are never destroyed.
func ToStorage(s string) string {
	cleaned := Clean(s)
	if cleaned == "" {
		return ""
	}
	t, ok := Parse(cleaned)
	if !ok {
		return cleaned
	}
	return t.Format(StorageLayout)
}

// ToISO renders any supported date form as yyyy-mm-dd. The output is
// either a valid ISO date or "", never a passthrough of unparseable text.
func ToISO(s string) string {
	t, ok := Parse(s)
	if !ok {
		return ""
	}
	return t.Format(ISOLayout)
}

// SortKey returns a comparable date for sorting. Absent and unparseable
// values map to the zero time, so they order first ascending and last
// descending.
func SortKey(s string) time.Time {
	t, ok := Parse(s)
	if !ok {
		return time.Time{}
	}
	return t
}

// FormatStorage renders a parsed date back into the storage form.
func FormatStorage(t time.Time) string {
	return t.Format(StorageLayout)
}
