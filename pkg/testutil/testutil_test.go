package testutil

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, "nested/dir/file.txt", "content")

	if !FileExists(t, path) {
		t.Error("expected file to exist")
	}
	AssertFileContent(t, path, "content")
}

func TestProvisionVenv(t *testing.T) {
	env := NewProjectEnv(t)

	venvPath := env.ProvisionVenv()

	if venvPath != filepath.Join(env.Root, "venv") {
		t.Errorf("unexpected venv path %s", venvPath)
	}
	if !FileExists(t, filepath.Join(env.BinDir(), "activate")) {
		t.Error("expected activation marker")
	}
	if !FileExists(t, filepath.Join(venvPath, "pyvenv.cfg")) {
		t.Error("expected pyvenv.cfg")
	}
}

func TestFakeTool(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are POSIX shell scripts")
	}
	binDir := t.TempDir()

	tool := InstallFakeTool(t, binDir, "pip", 0)

	if got := tool.Invocations(t); got != nil {
		t.Errorf("expected no invocations yet, got %v", got)
	}

	for _, args := range [][]string{
		{"install", "numpy"},
		{"install", "pandas"},
	} {
		if err := exec.Command(tool.Path, args...).Run(); err != nil {
			t.Fatalf("fake tool run failed: %v", err)
		}
	}

	got := tool.Invocations(t)
	want := []string{"install numpy", "install pandas"}
	if len(got) != len(want) {
		t.Fatalf("expected %d invocations, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("invocation %d: expected %q, got %q", i, want[i], got[i])
		}
	}

	tool.Reset(t)
	if got := tool.Invocations(t); got != nil {
		t.Errorf("expected no invocations after reset, got %v", got)
	}
}

func TestFakeToolWithFailures(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are POSIX shell scripts")
	}
	binDir := t.TempDir()

	tool := InstallFakeToolWithFailures(t, binDir, "pip", 3, "install scipy")

	if err := exec.Command(tool.Path, "install", "numpy").Run(); err != nil {
		t.Errorf("expected success for numpy, got %v", err)
	}

	err := exec.Command(tool.Path, "install", "scipy").Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error for scipy, got %v", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("expected exit code 3, got %d", exitErr.ExitCode())
	}

	// Both invocations were still recorded
	if got := tool.Invocations(t); len(got) != 2 {
		t.Errorf("expected 2 invocations, got %v", got)
	}
}
