package operations

import (
	"errors"
	"testing"
	"time"
)

func TestIsFileOp(t *testing.T) {
	tests := []struct {
		opType   OperationType
		expected bool
	}{
		{OperationExecute, false},
		{OperationCreateDir, true},
		{OperationWriteFile, true},
		{OperationBackupFile, true},
	}

	for _, tt := range tests {
		op := Operation{Type: tt.opType}
		if op.IsFileOp() != tt.expected {
			t.Errorf("IsFileOp() for %s: expected %v", tt.opType, tt.expected)
		}
	}
}

func TestOutcomeSuccess(t *testing.T) {
	tests := []struct {
		name     string
		outcome  Outcome
		expected bool
	}{
		{"clean run", Outcome{ExitCode: 0}, true},
		{"non-zero exit", Outcome{ExitCode: 1}, false},
		{"error with zero exit", Outcome{Err: errors.New("spawn failed")}, false},
		{"error and non-zero exit", Outcome{ExitCode: 2, Err: errors.New("failed")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.outcome.Success() != tt.expected {
				t.Errorf("expected Success() == %v", tt.expected)
			}
		})
	}
}

func TestLastExitCode(t *testing.T) {
	t.Run("empty sequence", func(t *testing.T) {
		if code := LastExitCode(nil); code != 0 {
			t.Errorf("expected 0, got %d", code)
		}
	})

	t.Run("follows the final outcome", func(t *testing.T) {
		outcomes := []Outcome{
			{ExitCode: 1},
			{ExitCode: 0},
			{ExitCode: 3},
		}
		if code := LastExitCode(outcomes); code != 3 {
			t.Errorf("expected 3, got %d", code)
		}
	})

	t.Run("earlier failures do not leak into a clean tail", func(t *testing.T) {
		outcomes := []Outcome{
			{ExitCode: 1, Duration: time.Millisecond},
			{ExitCode: 0},
		}
		if code := LastExitCode(outcomes); code != 0 {
			t.Errorf("expected 0, got %d", code)
		}
	})

	t.Run("trailing skips keep the halting failure", func(t *testing.T) {
		outcomes := []Outcome{
			{ExitCode: 0},
			{ExitCode: 3},
			{Operation: Operation{Status: StatusSkipped}},
			{Operation: Operation{Status: StatusSkipped}},
		}
		if code := LastExitCode(outcomes); code != 3 {
			t.Errorf("expected 3, got %d", code)
		}
	})

	t.Run("all skipped yields success", func(t *testing.T) {
		outcomes := []Outcome{
			{Operation: Operation{Status: StatusSkipped}},
		}
		if code := LastExitCode(outcomes); code != 0 {
			t.Errorf("expected 0, got %d", code)
		}
	})
}

func TestFailedCount(t *testing.T) {
	outcomes := []Outcome{
		{ExitCode: 0},
		{ExitCode: 1},
		{Err: errors.New("spawn failed")},
		{ExitCode: 0},
	}
	if got := FailedCount(outcomes); got != 2 {
		t.Errorf("expected 2 failures, got %d", got)
	}
}
