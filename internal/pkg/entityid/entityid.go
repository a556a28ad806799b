// Package entityid implements the human-readable identifier scheme used by
// every entity type: a fixed string prefix followed by a zero-padded,
// strictly increasing numeric suffix (e.g. STU0001, STU0002).
package entityid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedID is returned when an existing identifier does not match the
// expected prefix+number pattern for its entity type. This indicates corrupt
// data in the store and must not be silently repaired.
var ErrMalformedID = errors.New("identifier does not match prefix+number pattern")

// Spec describes how identifiers are generated for one entity type.
type Spec struct {
	// Kind is the sequence key used in the entity_sequences table,
	// e.g. "student".
	Kind string
	// Prefix is the fixed identifier prefix, e.g. "STU".
	Prefix string
	// Width is the minimum zero-pad width of the numeric suffix. Suffixes
	// that outgrow the width widen instead of wrapping or truncating.
	Width int
}

// Format renders the identifier for sequence value n.
func (s Spec) Format(n int64) string {
	return fmt.Sprintf("%s%0*d", s.Prefix, s.Width, n)
}

// Parse extracts the numeric suffix from an identifier of this type.
// The identifier must consist of the exact prefix followed only by digits,
// padded to at least Width digits.
func (s Spec) Parse(id string) (int64, error) {
	suffix, ok := strings.CutPrefix(id, s.Prefix)
	if !ok || suffix == "" {
		return 0, fmt.Errorf("%w: %q (want prefix %q)", ErrMalformedID, id, s.Prefix)
	}
	if len(suffix) < s.Width {
		return 0, fmt.Errorf("%w: %q (suffix shorter than pad width %d)", ErrMalformedID, id, s.Width)
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q (non-digit suffix)", ErrMalformedID, id)
		}
	}
	n, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrMalformedID, id, err)
	}
	return n, nil
}

// Next returns the identifier following last. An empty last yields the first
// identifier of the sequence. Next is a pure function: the caller is
// responsible for executing it inside the same atomic unit as the insert.
func (s Spec) Next(last string) (string, error) {
	if last == "" {
		return s.Format(1), nil
	}
	n, err := s.Parse(last)
	if err != nil {
		return "", err
	}
	return s.Format(n + 1), nil
}
