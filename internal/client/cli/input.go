package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// GetInput prompts for a single line and returns it trimmed.
func GetInput(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	fmt.Fprintln(w, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetFields prompts for "name=value" lines until an empty line and returns
// them as a map. Lines without '=' are reported and skipped.
func GetFields(reader *bufio.Reader, prompt string, w io.Writer) (map[string]string, error) {
	fmt.Fprintln(w, prompt)

	fields := map[string]string{}
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return fields, nil
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			fmt.Fprintf(w, "expected name=value, got %q\n", line)
			continue
		}
		fields[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
}
