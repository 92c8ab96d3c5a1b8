// Package action integrates with the CI environment the command runs in,
// emitting step outputs through the GITHUB_OUTPUT file protocol.
package action

import (
	"fmt"
	"os"
	"strings"
)

// SetOutput appends a step output to the file named by GITHUB_OUTPUT.
// Outside of a CI run the variable is unset and the call is a no-op.
func SetOutput(name, value string) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatOutput(name, value)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// formatOutput renders one output entry. Multi-line values use the
// heredoc form required by the output file protocol.
func formatOutput(name, value string) string {
	if !strings.Contains(value, "\n") {
		return fmt.Sprintf("%s=%s\n", name, value)
	}

	delimiter := "ghadelimiter"
	for strings.Contains(value, delimiter) {
		delimiter += "_"
	}
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
}
