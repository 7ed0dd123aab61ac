package entities

import "strings"

// Entry is one row of a category's dataset: the answer value, the
// attribute columns used for clue construction, and an optional image
// reference shown after the round is resolved.
type Entry struct {
	Answer string
	Attrs  map[string]string
	Image  string
}

// Attr returns the trimmed attribute value for a column, or the empty
// string when the row has no value for it.
func (e Entry) Attr(name string) string {
	return strings.TrimSpace(e.Attrs[name])
}
