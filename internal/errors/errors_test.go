package errors

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: ""},
		{name: "simple error", err: errors.New("something went wrong"), expected: "Error: something went wrong"},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("failed to load record: %w", errors.New("not found")),
			expected: "Error: failed to load record: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Format(tt.err); result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("invalid date %q", "2026-13-01")
	if got != `Error: invalid date "2026-13-01"` {
		t.Errorf("Formatf() = %q", got)
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer

	if Report(&buf, nil) {
		t.Error("Report(nil) should return false")
	}
	if buf.Len() != 0 {
		t.Errorf("Report(nil) wrote %q", buf.String())
	}

	if !Report(&buf, errors.New("disk full")) {
		t.Error("Report(err) should return true")
	}
	if got := buf.String(); got != "Error: disk full\n" {
		t.Errorf("Report() wrote %q", got)
	}
}

func TestFatalExits(t *testing.T) {
	if os.Getenv("DAYLOG_TEST_FATAL") == "1" {
		Fatal(errors.New("boom"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalExits")
	cmd.Env = append(os.Environ(), "DAYLOG_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %v", err)
	}
	if !strings.Contains(stderr.String(), "Error: boom") {
		t.Errorf("stderr = %q, want it to contain %q", stderr.String(), "Error: boom")
	}
}
