// Package prompt wraps the one blocking console read in the pipeline so
// everything else stays testable without a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question on w and reads one line from r.
// Only "yes" or "y" (case-insensitive, whitespace-trimmed) count as
// affirmative; anything else, including a closed input, is a no.
func Confirm(r io.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s (yes/no): ", question)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y":
		return true
	default:
		return false
	}
}
