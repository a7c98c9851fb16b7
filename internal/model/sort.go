package model

import (
	"fmt"
	"strings"
)

// SortMode selects the ordering of a derived view. Stored order is never affected.
type SortMode int

const (
	SortInput SortMode = iota
	SortDescription
	SortPacked
)

// SortModes lists every mode in the order the sort selector cycles through them.
func SortModes() []SortMode {
	return []SortMode{SortInput, SortDescription, SortPacked}
}

func (m SortMode) Valid() bool {
	return m >= SortInput && m <= SortPacked
}

func (m SortMode) String() string {
	switch m {
	case SortInput:
		return "input"
	case SortDescription:
		return "description"
	case SortPacked:
		return "packed"
	default:
		return fmt.Sprintf("SortMode(%d)", int(m))
	}
}

// Label is the text shown in the sort selector.
func (m SortMode) Label() string {
	switch m {
	case SortInput:
		return "Sort by input order"
	case SortDescription:
		return "Sort by description"
	case SortPacked:
		return "Sort by packed status"
	default:
		return "Unknown sort"
	}
}

// Next returns the mode after m, wrapping around.
func (m SortMode) Next() SortMode {
	if !m.Valid() {
		return SortInput
	}
	return (m + 1) % SortMode(len(SortModes()))
}

// ParseSortMode accepts the canonical names plus the short forms "desc" and
// "status", and "insertion" as an alias for input.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "input", "insertion":
		return SortInput, nil
	case "description", "desc":
		return SortDescription, nil
	case "packed", "status":
		return SortPacked, nil
	}
	return SortInput, fmt.Errorf("%w: %q", ErrUnknownSortMode, s)
}
