// Package receipt defines the recipe record stored in the cookbook.
package receipt

import "fmt"

// Field limits, matching the on-disk format the cookbook has always used.
// A name longer than MaxNameLen or a body longer than MaxBodyLen is
// silently truncated at construction.
const (
	MaxNameLen = 29
	MaxBodyLen = 999
)

// New builds a Receipt with both fields truncated to their limits.
// The id is assigned by the catalog, never here.
func New(name, body string) *Receipt {
	return &Receipt{
		Name: Truncate(name, MaxNameLen),
		Body: Truncate(body, MaxBodyLen),
	}
}

// Receipt is one named recipe. The ID is unique for the lifetime of the
// process and is not persisted.
type Receipt struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Body string `json:"body,omitempty"`
}

func (r *Receipt) String() string {
	return fmt.Sprintf("[%d] %s", r.ID, r.Name)
}

// Truncate cuts s to at most max bytes.
func Truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// Compare orders two names case-insensitively: each byte is folded
// through an ASCII lowercase mapping and the first mismatch decides.
// Equal length and content yields 0. The fold is locale-independent so
// sort order never shifts with the environment.
func Compare(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := lower(a[i]), lower(b[i])
		if ca != cb {
			return int(ca) - int(cb)
		}
	}
	switch {
	case len(a) < len(b):
		return -int(lower(b[len(a)]))
	case len(a) > len(b):
		return int(lower(a[len(b)]))
	default:
		return 0
	}
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
