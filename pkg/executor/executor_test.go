package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	e := New()
	if !e.Available("sh") {
		t.Skip("sh not available")
	}

	out, err := e.Execute(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Execute() = %q, want %q", out, "hello")
	}
}

func TestExecuteInDir(t *testing.T) {
	e := New()
	if !e.Available("sh") {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	out, err := e.ExecuteInDir(context.Background(), dir, "sh", "-c", "pwd")
	if err != nil {
		t.Fatalf("ExecuteInDir() error = %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), strings.TrimPrefix(dir, "/private")) {
		t.Errorf("ExecuteInDir() ran in %q, want %q", out, dir)
	}
}

func TestExecuteFailureIncludesStderr(t *testing.T) {
	e := New()
	if !e.Available("sh") {
		t.Skip("sh not available")
	}

	_, err := e.Execute(context.Background(), "sh", "-c", "echo broken >&2; exit 3")
	if err == nil || !strings.Contains(err.Error(), "broken") {
		t.Errorf("Execute() error = %v, want stderr in message", err)
	}
}

func TestAvailable(t *testing.T) {
	if New().Available("definitely-not-a-real-binary-xyz") {
		t.Error("Available() = true for missing binary")
	}
}
