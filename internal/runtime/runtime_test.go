package runtime

import (
	"bytes"
	"context"
	"errors"
	goruntime "runtime"
	"strings"
	"testing"
)

func TestExecRunnerCapturesOutput(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}

	r := &ExecRunner{}
	out, err := r.Run(context.Background(), "", "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if strings.TrimSpace(out.Stdout) != "hello" {
		t.Errorf("Stdout = %q, want hello", out.Stdout)
	}
	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}
}

func TestExecRunnerStreamsWhenConfigured(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}

	var stream bytes.Buffer
	r := &ExecRunner{Stdout: &stream}
	out, err := r.Run(context.Background(), "", "sh", "-c", "echo streamed")
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Output lands in both the stream and the capture.
	if !strings.Contains(stream.String(), "streamed") {
		t.Errorf("stream = %q, want to contain streamed", stream.String())
	}
	if !strings.Contains(out.Stdout, "streamed") {
		t.Errorf("Stdout = %q, want to contain streamed", out.Stdout)
	}
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	if goruntime.GOOS == "windows" {
		t.Skip("relies on /bin/sh")
	}

	r := &ExecRunner{}
	out, err := r.Run(context.Background(), "", "sh", "-c", "echo oops >&2; exit 3")
	if err == nil {
		t.Fatal("Run() should fail on non-zero exit")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %T (%v), want *ExitError", err, err)
	}
	if exitErr.Code != 3 {
		t.Errorf("Code = %d, want 3", exitErr.Code)
	}
	if !strings.Contains(exitErr.Output, "oops") {
		t.Errorf("Output = %q, want captured stderr", exitErr.Output)
	}
	if out == nil || out.ExitCode != 3 {
		t.Errorf("Output.ExitCode = %v, want 3", out)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := &ExecRunner{}
	_, err := r.Run(context.Background(), "", "definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("Run() should fail for a missing binary")
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		t.Errorf("missing binary should not be an ExitError, got %v", err)
	}
}

func TestFind(t *testing.T) {
	if _, err := Find("definitely-not-a-real-binary-xyz"); err == nil {
		t.Error("Find() should fail for a missing binary")
	}

	if goruntime.GOOS != "windows" {
		path, err := Find("sh")
		if err != nil {
			t.Fatalf("Find(sh) error: %v", err)
		}
		if path == "" {
			t.Error("Find(sh) returned empty path")
		}
	}
}

func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{Tool: "git", Args: []string{"init"}, Code: 128}
	want := "git init exited with status 128"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestOutputCombined(t *testing.T) {
	out := &Output{Stdout: "a\n", Stderr: "b\n"}
	if got := out.Combined(); got != "a\nb" {
		t.Errorf("Combined() = %q, want %q", got, "a\nb")
	}

	empty := &Output{}
	if got := empty.Combined(); got != "" {
		t.Errorf("Combined() on empty = %q, want empty", got)
	}
}
