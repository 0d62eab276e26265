package errors

import (
	"strconv"
	"strings"
)

// ParseIntList parses a comma-separated list of integers.
// Tokens are trimmed and empty tokens are skipped, so "2, 3,,4" parses
// to [2 3 4]. A token that does not parse as an integer yields an
// INVALID_INPUT error; no partial result is returned.
//
// An empty or all-whitespace string parses to an empty list, which is a
// valid input (it produces a single-root graph downstream).
func ParseIntList(s string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, New(ErrCodeInvalidInput, "invalid integer token: %q", tok)
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseInt parses a single integer field (capacity, target).
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, New(ErrCodeInvalidInput, "invalid integer: %q", s)
	}
	return n, nil
}

// ValidateSameLength checks that the weights and values lists have the
// same length. Both enumerator variants index the two lists in lockstep,
// so a mismatch is rejected before any enumeration starts.
func ValidateSameLength(weights, values []int) error {
	if len(weights) != len(values) {
		return New(ErrCodeValidation,
			"weights and values must have the same length (got %d and %d)",
			len(weights), len(values))
	}
	return nil
}
