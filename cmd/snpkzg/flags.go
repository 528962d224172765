package main

import (
	"fmt"
	"strconv"
)

// parseIndex parses a decimal, non-negative polynomial index from a CLI
// positional argument.
func parseIndex(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	return v, nil
}
