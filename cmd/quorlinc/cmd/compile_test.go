package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "contract.ql")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestRunCompileProducesYul(t *testing.T) {
	path := writeFixture(t, `contract Counter:
    count: uint256

    @external
    def increment(self):
        self.count = self.count + 1
`)

	dir := t.TempDir()
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}

	compileTarget = ""
	compileOutputFile = ""
	compileEmitLayout = false
	compileEmitIR = false

	r, w, _ := os.Pipe()
	oldStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	if err := runCompile(nil, []string{path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.Close()
	buf := make([]byte, 4096)
	n, _ := r.Read(buf)
	out := string(buf[:n])

	if !strings.Contains(out, `object "Contract"`) {
		t.Fatalf("expected Yul object skeleton in output, got %q", out)
	}
}

func TestRunCompileRejectsUnsupportedTarget(t *testing.T) {
	path := writeFixture(t, `contract Empty:
    @external
    def noop(self):
        pass
`)

	dir := t.TempDir()
	cwd, _ := os.Getwd()
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}

	compileTarget = "solana"
	compileOutputFile = ""
	compileEmitLayout = false
	compileEmitIR = false
	defer func() { compileTarget = "" }()

	if err := runCompile(nil, []string{path}); err == nil {
		t.Fatalf("expected an error for an unsupported target")
	}
}
