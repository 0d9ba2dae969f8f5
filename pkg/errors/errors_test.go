// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/mihaiBront/venvup/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "env_missing_error",
			code:    errors.ErrEnvMissing,
			message: "virtual environment not provisioned",
			wantStr: "[ENV_MISSING] virtual environment not provisioned",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("exec format error")

	err := errors.Wrap(base, errors.ErrActionExecute, "failed to run pip")
	if err == nil {
		t.Fatal("Wrap() returned nil for non-nil error")
	}

	if !stderrors.Is(err, base) {
		t.Error("wrapped error should match the base error via errors.Is")
	}

	want := "[ACTION_EXECUTE] failed to run pip: exec format error"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Wrap(nil, errors.ErrActionExecute, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	base := stderrors.New("permission denied")

	err := errors.Wrapf(base, errors.ErrFileWrite, "failed to write %s", "venvup.toml")
	if err.Message != "failed to write venvup.toml" {
		t.Errorf("Wrapf() message = %q", err.Message)
	}

	if stderrors.Unwrap(err) != base {
		t.Error("Unwrap() should return the base error")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrPythonMissing, "no interpreter on PATH")

	if !errors.IsErrorCode(err, errors.ErrPythonMissing) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrEnvMissing) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrPythonMissing) {
		t.Error("IsErrorCode() should not match plain errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrConfigParse, "bad key %q", "venv.dir")
	if got := errors.GetErrorCode(err); got != errors.ErrConfigParse {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrConfigParse)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}

	wrapped := errors.Wrap(errors.New(errors.ErrEnvMissing, "inner"), errors.ErrInternal, "outer")
	if got := errors.GetErrorCode(wrapped); got != errors.ErrInternal {
		t.Errorf("GetErrorCode(wrapped) = %v, want outermost code %v", got, errors.ErrInternal)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrActionExecute, "install failed").
		WithDetail("package", "numpy").
		WithDetail("exit_code", 1)

	if err.Details["package"] != "numpy" {
		t.Errorf("Details[package] = %v, want numpy", err.Details["package"])
	}
	if err.Details["exit_code"] != 1 {
		t.Errorf("Details[exit_code] = %v, want 1", err.Details["exit_code"])
	}
}
