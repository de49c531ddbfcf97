package shell

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/Nsfr750/pack/internal/utils/logger"
)

// commandMap pins every external tool to its expected location. Relative
// or bare commands outside this map are rejected; absolute paths (such as
// the pip inside an ephemeral virtual environment) pass through unchanged.
var commandMap = map[string]string{
	"bash":    "/usr/bin/bash",
	"cat":     "/usr/bin/cat",
	"command": "command", // shell builtin, not a standalone command
	"echo":    "/usr/bin/echo",
	"gpg":     "/usr/bin/gpg",
	"python":  "/usr/bin/python",
	"python3": "/usr/bin/python3",
	"sh":      "/bin/sh",
	"twine":   "/usr/bin/twine",
}

// ExecRequest describes one external command invocation.
type ExecRequest struct {
	Cmd    string   // raw command string, first token resolved via commandMap
	Dir    string   // working directory; empty runs in the current directory
	Env    []string // extra KEY=VALUE entries appended to the environment
	Input  string   // optional stdin contents
	Stream bool     // stream output line by line through the logger
	Silent bool     // suppress logging of command output
}

// Executor runs commands. Default can be swapped for a mock in tests.
type Executor interface {
	Run(req ExecRequest) (string, error)
}

// Default is the process-wide executor used by every helper below.
var Default Executor = &hostExecutor{}

// IsCommandExist checks whether a command is available on the host.
func IsCommandExist(cmd string) bool {
	out, _ := Default.Run(ExecRequest{Cmd: "command -v " + cmd, Silent: true})
	return len(bytes.TrimSpace([]byte(out))) != 0
}

func resolveCmdWithFullPath(cmd string) (string, error) {
	separators := []string{"&&", "||", ";"}

	sepIdx := -1
	sep := ""
	for _, s := range separators {
		if idx := strings.Index(cmd, s); idx != -1 && (sepIdx == -1 || idx < sepIdx) {
			sepIdx = idx
			sep = s
		}
	}
	if sepIdx != -1 {
		left := strings.TrimSpace(cmd[:sepIdx])
		right := strings.TrimSpace(cmd[sepIdx+len(sep):])
		leftCmdStr, err := resolveCmdWithFullPath(left)
		if err != nil {
			return "", fmt.Errorf("failed to resolve command: %w", err)
		}
		rightCmdStr, err := resolveCmdWithFullPath(right)
		if err != nil {
			return "", fmt.Errorf("failed to resolve command: %w", err)
		}
		return leftCmdStr + " " + sep + " " + rightCmdStr, nil
	}

	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return cmd, nil
	}
	bin := fields[0]
	if strings.Contains(bin, "/") {
		// Absolute or explicit relative path, e.g. a venv's bin/pip.
		return strings.Join(fields, " "), nil
	}
	fullPath, ok := commandMap[bin]
	if !ok {
		return "", fmt.Errorf("command %s not found in commandMap", bin)
	}
	fields[0] = fullPath
	return strings.Join(fields, " "), nil
}

// ExecCmd executes a command and returns its combined output.
func ExecCmd(cmdStr string, dir string, envVal []string) (string, error) {
	return Default.Run(ExecRequest{Cmd: cmdStr, Dir: dir, Env: envVal})
}

// ExecCmdSilent behaves like ExecCmd without logging the command output.
func ExecCmdSilent(cmdStr string, dir string, envVal []string) (string, error) {
	return Default.Run(ExecRequest{Cmd: cmdStr, Dir: dir, Env: envVal, Silent: true})
}

// ExecCmdWithStream executes a command and streams its output through the logger.
func ExecCmdWithStream(cmdStr string, dir string, envVal []string) (string, error) {
	return Default.Run(ExecRequest{Cmd: cmdStr, Dir: dir, Env: envVal, Stream: true})
}

// ExecCmdWithInput executes a command feeding inputStr on stdin.
func ExecCmdWithInput(inputStr string, cmdStr string, dir string, envVal []string) (string, error) {
	return Default.Run(ExecRequest{Cmd: cmdStr, Dir: dir, Env: envVal, Input: inputStr})
}

type hostExecutor struct{}

func (e *hostExecutor) Run(req ExecRequest) (string, error) {
	log := logger.Logger()

	fullCmdStr, err := resolveCmdWithFullPath(req.Cmd)
	if err != nil {
		return "", fmt.Errorf("failed to resolve command path: %w", err)
	}

	cmd := exec.Command("bash", "-c", fullCmdStr)
	if req.Dir != "" {
		cmd.Dir = req.Dir
	}
	if len(req.Env) > 0 {
		cmd.Env = append(os.Environ(), req.Env...)
	}
	if req.Input != "" {
		cmd.Stdin = strings.NewReader(req.Input)
	}

	if !req.Silent {
		log.Debugf("Exec: [%s]", fullCmdStr)
	}

	if req.Stream {
		return e.runStreaming(cmd, fullCmdStr)
	}

	output, err := cmd.CombinedOutput()
	outputStr := string(output)

	if err != nil {
		if outputStr != "" && !req.Silent {
			log.Infof(outputStr)
		}
		return outputStr, fmt.Errorf("failed to exec %s: %w", fullCmdStr, err)
	}
	if outputStr != "" && !req.Silent {
		log.Debugf(outputStr)
	}
	return outputStr, nil
}

func (e *hostExecutor) runStreaming(cmd *exec.Cmd, fullCmdStr string) (string, error) {
	log := logger.Logger()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", fmt.Errorf("failed to get stdout pipe for command %s: %w", fullCmdStr, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("failed to get stderr pipe for command %s: %w", fullCmdStr, err)
	}

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start command %s: %w", fullCmdStr, err)
	}

	var (
		wg        sync.WaitGroup
		outputMu  sync.Mutex
		outputStr string
	)
	wg.Add(2)

	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			str := scanner.Text()
			if str != "" {
				outputMu.Lock()
				outputStr += str + "\n"
				outputMu.Unlock()
				log.Infof(str)
			}
		}
	}()

	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			str := scanner.Text()
			if str != "" {
				outputMu.Lock()
				outputStr += str + "\n"
				outputMu.Unlock()
				log.Infof(str)
			}
		}
	}()

	wg.Wait()

	if err := cmd.Wait(); err != nil {
		return outputStr, fmt.Errorf("failed to wait for command %s: %w", fullCmdStr, err)
	}

	return outputStr, nil
}
