package shell

import (
	"testing"
	"time"
)

func TestRun_CapturesOutput(t *testing.T) {
	result, err := Run("echo", "hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if result.Stdout != "hello" {
		t.Errorf("Stdout = %q, want %q", result.Stdout, "hello")
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	result, err := Run("sh", "-c", "exit 3")
	if err != nil {
		t.Fatalf("Run() error = %v, want nil for a non-zero exit", err)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
}

func TestRun_MissingBinary(t *testing.T) {
	result, err := Run("definitely-not-a-real-binary-xyz")
	if err == nil {
		t.Fatal("Run() error = nil for a missing binary, want error")
	}
	if result.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", result.ExitCode)
	}
}

func TestRunWithTimeout_KillsCommand(t *testing.T) {
	start := time.Now()
	_, _ = RunWithTimeout(100*time.Millisecond, "sleep", "5")
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("command ran %v, want it killed near the 100ms timeout", elapsed)
	}
}
