package shell_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/Nsfr750/pack/internal/utils/shell"
)

func TestResolveFullPathViaExec(t *testing.T) {
	out, err := shell.ExecCmd("echo 'test-exec-cmd'", "", nil)
	if err != nil {
		t.Fatalf("ExecCmd failed: %v", err)
	}
	if !strings.Contains(out, "test-exec-cmd") {
		t.Errorf("Expected output to contain 'test-exec-cmd', got: %s", out)
	}
}

func TestExecCmdUnknownCommandRejected(t *testing.T) {
	_, err := shell.ExecCmd("definitely-not-a-command --version", "", nil)
	if err == nil {
		t.Fatal("expected error for command outside commandMap")
	}
	if !strings.Contains(err.Error(), "not found in commandMap") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecCmdAbsolutePathAllowed(t *testing.T) {
	out, err := shell.ExecCmd("/usr/bin/echo venv-pip-style", "", nil)
	if err != nil {
		t.Fatalf("ExecCmd with absolute path failed: %v", err)
	}
	if !strings.Contains(out, "venv-pip-style") {
		t.Errorf("Expected output to contain 'venv-pip-style', got: %s", out)
	}
}

func TestExecCmdWithStream(t *testing.T) {
	out, err := shell.ExecCmdWithStream("echo 'test-exec-stream'", "", nil)
	if err != nil {
		t.Fatalf("ExecCmdWithStream failed: %v", err)
	}
	if !strings.Contains(out, "test-exec-stream") {
		t.Errorf("Expected output to contain 'test-exec-stream', got: %s", out)
	}
}

func TestExecCmdWithInput(t *testing.T) {
	out, err := shell.ExecCmdWithInput("input-line", "cat", "", nil)
	if err != nil {
		t.Fatalf("ExecCmdWithInput failed: %v", err)
	}
	if !strings.Contains(out, "input-line") {
		t.Errorf("Expected output to contain 'input-line', got: %s", out)
	}
}

func TestExecCmdOverride(t *testing.T) {
	originalExecutor := shell.Default
	defer func() { shell.Default = originalExecutor }()
	mockExpectedOutput := []shell.MockCommand{
		{Pattern: "echo 'test-exec-cmd-override'", Output: "override-test\n", Error: nil},
	}
	shell.Default = shell.NewMockExecutor(mockExpectedOutput)
	out, err := shell.ExecCmd("echo 'test-exec-cmd-override'", "", nil)
	if err != nil {
		t.Fatalf("ExecCmd with override failed: %v", err)
	}
	if !strings.Contains(out, "override-test") {
		t.Errorf("Expected output to contain 'override-test', got: %s", out)
	}
}

func TestMockExecutorUnmatchedCommand(t *testing.T) {
	originalExecutor := shell.Default
	defer func() { shell.Default = originalExecutor }()
	shell.Default = shell.NewMockExecutor(nil)

	_, err := shell.ExecCmd("echo 'unmatched'", "", nil)
	if err == nil {
		t.Fatal("expected error for unmatched mock command")
	}
}

func TestMockExecutorError(t *testing.T) {
	originalExecutor := shell.Default
	defer func() { shell.Default = originalExecutor }()
	wantErr := errors.New("exit status 1")
	shell.Default = shell.NewMockExecutor([]shell.MockCommand{
		{Pattern: "pip install", Output: "boom\n", Error: wantErr},
	})

	out, err := shell.ExecCmd("/tmp/venv/bin/pip install -r reqs.txt", "", nil)
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped mock error, got: %v", err)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("expected mock output, got: %s", out)
	}
}
