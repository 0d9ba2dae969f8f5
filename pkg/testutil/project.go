package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// ProjectEnv is an isolated project directory for venv tests
type ProjectEnv struct {
	Root    string
	VenvDir string

	t *testing.T
}

// NewProjectEnv creates an empty project in a temp directory.
// The venv directory name defaults to "venv" and no venv exists yet.
func NewProjectEnv(t *testing.T) *ProjectEnv {
	t.Helper()

	return &ProjectEnv{
		Root:    t.TempDir(),
		VenvDir: "venv",
		t:       t,
	}
}

// VenvPath returns the absolute venv directory path
func (p *ProjectEnv) VenvPath() string {
	return filepath.Join(p.Root, p.VenvDir)
}

// BinDir returns the venv's executable directory
func (p *ProjectEnv) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(p.VenvPath(), "Scripts")
	}
	return filepath.Join(p.VenvPath(), "bin")
}

// ProvisionVenv lays out the minimal on-disk shape of a provisioned
// environment: the activation marker plus a pyvenv.cfg. Returns the
// venv directory path.
func (p *ProjectEnv) ProvisionVenv() string {
	p.t.Helper()

	CreateDir(p.t, p.VenvPath(), filepath.Base(p.BinDir()))
	CreateFile(p.t, p.BinDir(), "activate", "# fabricated activation script\n")
	CreateFile(p.t, p.VenvPath(), "pyvenv.cfg",
		"home = /usr/bin\nversion = 3.12.3\ninclude-system-site-packages = false\n")

	return p.VenvPath()
}

// FakeTool is an executable placed on PATH that records each invocation
type FakeTool struct {
	Name    string
	Path    string
	LogPath string
}

// InstallFakeTool writes an executable shell script named name into binDir.
// Each invocation appends its space-joined arguments as one line to the
// tool's log file, then exits with exitCode. POSIX only.
func InstallFakeTool(t *testing.T, binDir, name string, exitCode int) *FakeTool {
	t.Helper()

	logPath := filepath.Join(binDir, name+".invocations")
	script := fmt.Sprintf("#!/bin/sh\necho \"$@\" >> %q\nexit %d\n", logPath, exitCode)
	return writeFakeTool(t, binDir, name, logPath, script)
}

// InstallFakeToolWithFailures is like InstallFakeTool, but the script
// exits with failCode when its joined arguments equal one of failOn,
// and 0 otherwise.
func InstallFakeToolWithFailures(t *testing.T, binDir, name string, failCode int, failOn ...string) *FakeTool {
	t.Helper()

	logPath := filepath.Join(binDir, name+".invocations")
	var b strings.Builder
	fmt.Fprintf(&b, "#!/bin/sh\necho \"$@\" >> %q\ncase \"$*\" in\n", logPath)
	for _, args := range failOn {
		fmt.Fprintf(&b, "  %q) exit %d ;;\n", args, failCode)
	}
	b.WriteString("esac\nexit 0\n")
	return writeFakeTool(t, binDir, name, logPath, b.String())
}

// InstallFakeToolWithOutput is like InstallFakeTool, but the script also
// prints stdout before exiting. Useful for faking query commands.
func InstallFakeToolWithOutput(t *testing.T, binDir, name string, exitCode int, stdout string) *FakeTool {
	t.Helper()

	logPath := filepath.Join(binDir, name+".invocations")
	var b strings.Builder
	fmt.Fprintf(&b, "#!/bin/sh\necho \"$@\" >> %q\n", logPath)
	fmt.Fprintf(&b, "cat <<'FAKE_TOOL_EOF'\n%s\nFAKE_TOOL_EOF\n", stdout)
	fmt.Fprintf(&b, "exit %d\n", exitCode)
	return writeFakeTool(t, binDir, name, logPath, b.String())
}

func writeFakeTool(t *testing.T, binDir, name, logPath, script string) *FakeTool {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake tools are POSIX shell scripts")
	}

	if err := os.MkdirAll(binDir, 0755); err != nil {
		t.Fatalf("Failed to create tool directory %s: %v", binDir, err)
	}
	path := filepath.Join(binDir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake tool %s: %v", path, err)
	}

	return &FakeTool{Name: name, Path: path, LogPath: logPath}
}

// Invocations returns one entry per recorded invocation, oldest first.
// Each entry is the space-joined argument list the tool received.
func (f *FakeTool) Invocations(t *testing.T) []string {
	t.Helper()

	content, err := os.ReadFile(f.LogPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("Failed to read invocation log %s: %v", f.LogPath, err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil
	}
	return lines
}

// Reset clears the recorded invocations
func (f *FakeTool) Reset(t *testing.T) {
	t.Helper()

	if err := os.Remove(f.LogPath); err != nil && !os.IsNotExist(err) {
		t.Fatalf("Failed to reset invocation log %s: %v", f.LogPath, err)
	}
}

// PrependPath puts dir at the front of PATH for the duration of the test
func PrependPath(t *testing.T, dir string) {
	t.Helper()

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
