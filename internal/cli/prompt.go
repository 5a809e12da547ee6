package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/scaffold"
)

// overwritePrompter returns a decision callback that shows a unified diff of
// the pending change, asks on w, and reads the answer from r. Anything other
// than y/yes keeps the existing file.
func overwritePrompter(r io.Reader, w io.Writer) scaffold.DecisionFunc {
	reader := bufio.NewReader(r)
	return func(path string, existing, incoming []byte) scaffold.Decision {
		if !bytes.Equal(existing, incoming) {
			diff := udiff.Unified(path, path+" (incoming)", string(existing), string(incoming))
			if strings.TrimSpace(diff) != "" {
				fmt.Fprintf(w, "\n%s", diff)
			}
		}
		fmt.Fprintf(w, "Overwrite %s? A timestamped backup will be kept. [y/N]: ", path)

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return scaffold.Decline
		}
		return parseAnswer(line)
	}
}

// parseAnswer maps a typed confirmation to an overwrite decision.
func parseAnswer(line string) scaffold.Decision {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return scaffold.Accept
	}
	return scaffold.Decline
}

// isTerminal checks if the given file is a terminal (for auto-detecting interactive mode).
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
