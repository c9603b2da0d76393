package commands

import (
	"fmt"
	"strconv"
)

// parsePhase parses a phase argument.
func parsePhase(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, s)
	}
	return n, nil
}
