package parity

// Unix Grep Parity Test
//
// Runs xgrep and /usr/bin/grep over the same fixture files with the switches
// both tools share and requires identical stdout and exit codes.
//
// Categories:
//   1. Output format (file:line:content, no decoration)
//   2. Stdin piping
//   3. Exit codes (0=selected, 1=nothing selected, 2=error)
//   4. Shared switches (-c -i -l -m -n -v -H -h -e)
//
// Switches whose meaning differs are left out: -L, -s, -E and -C. Count mode
// is only compared where both tools print "name:count" lines, since xgrep
// always names the file and folds -c -h into a single total.

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var xgrepBin string

func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "xgrep-parity-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "create temp dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(tmp)

	xgrepBin = filepath.Join(tmp, "xgrep")
	cmd := exec.Command("go", "build", "-o", xgrepBin, "./cmd/xgrep/")
	cmd.Dir = findModuleRoot()
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("go.mod not found")
		}
		dir = parent
	}
}

// testFiles defines the fixture files for parity testing.
var testFiles = map[string]string{
	"src/handler.py": `import os
import runpod
from config import settings

class RunpodHandler:
    """Main handler for RunPod serverless."""

    def __init__(self):
        self.client = runpod.Client()
        self.timeout = settings.TIMEOUT

    def handle(self, event):
        """Handle incoming RunPod event."""
        job_id = event.get("id")
        input_data = event.get("input", {})
        result = self.process(input_data)
        return {"status": "completed", "output": result}
`,
	"src/config.py": `import os

class Settings:
    """Application settings loaded from environment."""
    TIMEOUT = int(os.environ.get("TIMEOUT", "30"))
    DEBUG = os.environ.get("DEBUG", "false").lower() == "true"
    API_KEY = os.environ.get("RUNPOD_API_KEY", "")

settings = Settings()
`,
	"README.md": `# Runpod worker

Deploy with the runpod CLI.
No trailing newline on the last line`,
}

// setupTestDir creates the fixture files on disk and returns the temp directory path.
func setupTestDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for relPath, content := range testFiles {
		fullPath := filepath.Join(dir, relPath)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0644))
	}
	return dir
}

type outcome struct {
	stdout string
	code   int
}

func run(t *testing.T, bin, dir, stdin string, args ...string) outcome {
	t.Helper()
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	var outBuf strings.Builder
	cmd.Stdout = &outBuf
	err := cmd.Run()
	code := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		require.True(t, ok, "exec %s: %v", bin, err)
		code = exitErr.ExitCode()
	}
	return outcome{stdout: outBuf.String(), code: code}
}

// sameAsGrep runs both tools with args and requires identical results.
func sameAsGrep(t *testing.T, stdin string, args ...string) {
	t.Helper()
	grepPath, err := exec.LookPath("grep")
	if err != nil {
		t.Skip("system grep not found")
	}
	dir := setupTestDir(t)
	want := run(t, grepPath, dir, stdin, args...)
	got := run(t, xgrepBin, dir, stdin, args...)
	assert.Equal(t, want.code, got.code, "exit code for %v", args)
	assert.Equal(t, want.stdout, got.stdout, "stdout for %v", args)
}

// =============================================================================
// 1. OUTPUT FORMAT
// =============================================================================

func TestParity_OutputFormat(t *testing.T) {
	cases := [][]string{
		{"runpod", "src/handler.py"},
		{"import", "src/handler.py", "src/config.py"},
		{"-n", "os", "src/handler.py", "src/config.py"},
		{"-H", "runpod", "src/handler.py"},
		{"-h", "import", "src/handler.py", "src/config.py"},
		{"newline", "README.md"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			sameAsGrep(t, "", args...)
		})
	}
}

// =============================================================================
// 2. STDIN PIPING
// =============================================================================

func TestParity_Stdin(t *testing.T) {
	input := "Hello World\nhello again\nHELLO CAPS\nbye\n"
	cases := [][]string{
		{"hello"},
		{"-i", "hello"},
		{"-n", "-v", "World"},
		{"xyz"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			sameAsGrep(t, input, args...)
		})
	}
}

// =============================================================================
// 3. EXIT CODES
// =============================================================================

func TestParity_ExitCodes(t *testing.T) {
	cases := [][]string{
		{"runpod", "src/handler.py"},
		{"zzzznothere", "src/handler.py"},
		{"-q", "runpod", "src/handler.py"},
		{"-q", "zzzznothere", "src/handler.py"},
		{"pattern", "no_such_file.txt"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			sameAsGrep(t, "", args...)
		})
	}
}

// =============================================================================
// 4. SHARED SWITCHES
// =============================================================================

func TestParity_Switches(t *testing.T) {
	cases := [][]string{
		{"-c", "self", "src/handler.py", "src/config.py"},
		{"-l", "import", "src/handler.py", "src/config.py", "README.md"},
		{"-m", "2", "self", "src/handler.py"},
		{"-m", "1", "-v", "self", "src/handler.py"},
		{"-i", "-n", "TIMEOUT", "src/handler.py", "src/config.py"},
		{"-e", "^class", "-e", "^settings", "src/config.py"},
		{"-H", "-v", "-c", "^ ", "src/handler.py"},
		{"-o", "RunPod", "src/handler.py"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			sameAsGrep(t, "", args...)
		})
	}
}
