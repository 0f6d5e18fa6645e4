package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question on out and reads one answer line from in.
// Read errors and blank answers yield defaultYes.
func Confirm(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	hint := " (y/N): "
	if defaultYes {
		hint = " (Y/n): "
	}
	fmt.Fprint(out, message+hint)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return defaultYes
	}

	switch strings.TrimSpace(strings.ToLower(response)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}
