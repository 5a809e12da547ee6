package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/steliosvliaros/setup-ptoject-ps/internal/scaffold"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		name string
		line string
		want scaffold.Decision
	}{
		{"lowercase y", "y\n", scaffold.Accept},
		{"uppercase y", "Y\n", scaffold.Accept},
		{"yes", "yes\n", scaffold.Accept},
		{"padded yes", "  YES  \n", scaffold.Accept},
		{"n", "n\n", scaffold.Decline},
		{"no", "no\n", scaffold.Decline},
		{"empty line", "\n", scaffold.Decline},
		{"garbage", "sure\n", scaffold.Decline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseAnswer(tt.line); got != tt.want {
				t.Errorf("parseAnswer(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestOverwritePrompterAccept(t *testing.T) {
	var out bytes.Buffer
	decide := overwritePrompter(strings.NewReader("y\n"), &out)

	got := decide("README.md", []byte("old line\n"), []byte("new line\n"))
	if got != scaffold.Accept {
		t.Fatalf("decision = %v, want Accept", got)
	}

	prompt := out.String()
	if !strings.Contains(prompt, "Overwrite README.md?") {
		t.Errorf("prompt missing question:\n%s", prompt)
	}
	if !strings.Contains(prompt, "-old line") || !strings.Contains(prompt, "+new line") {
		t.Errorf("prompt missing diff preview:\n%s", prompt)
	}
}

func TestOverwritePrompterDeclineOnEOF(t *testing.T) {
	var out bytes.Buffer
	decide := overwritePrompter(strings.NewReader(""), &out)

	if got := decide("README.md", []byte("a\n"), []byte("b\n")); got != scaffold.Decline {
		t.Fatalf("decision on EOF = %v, want Decline", got)
	}
}

func TestOverwritePrompterNoDiffForIdenticalContent(t *testing.T) {
	var out bytes.Buffer
	decide := overwritePrompter(strings.NewReader("n\n"), &out)

	decide("notes.md", []byte("same\n"), []byte("same\n"))
	if strings.Contains(out.String(), "@@") {
		t.Errorf("identical content should not produce a diff:\n%s", out.String())
	}
}

func TestOverwritePrompterConsecutiveAnswers(t *testing.T) {
	var out bytes.Buffer
	decide := overwritePrompter(strings.NewReader("y\nn\n"), &out)

	if got := decide("a.txt", []byte("1\n"), []byte("2\n")); got != scaffold.Accept {
		t.Errorf("first decision = %v, want Accept", got)
	}
	if got := decide("b.txt", []byte("1\n"), []byte("2\n")); got != scaffold.Decline {
		t.Errorf("second decision = %v, want Decline", got)
	}
}
