package shell

import (
	"fmt"
	"regexp"
)

// MockCommand pairs a command pattern with the canned result a test expects.
type MockCommand struct {
	Pattern string // regular expression matched against the raw command string
	Output  string
	Error   error
}

// MockExecutor replays canned outputs for matching commands. Tests install
// it by swapping shell.Default and restoring the original afterwards.
type MockExecutor struct {
	Commands []MockCommand
	Calls    []ExecRequest
}

func NewMockExecutor(commands []MockCommand) *MockExecutor {
	return &MockExecutor{Commands: commands}
}

func (m *MockExecutor) Run(req ExecRequest) (string, error) {
	m.Calls = append(m.Calls, req)
	for _, mc := range m.Commands {
		matched, err := regexp.MatchString(mc.Pattern, req.Cmd)
		if err != nil {
			return "", fmt.Errorf("invalid mock pattern %q: %w", mc.Pattern, err)
		}
		if matched {
			return mc.Output, mc.Error
		}
	}
	return "", fmt.Errorf("no mock registered for command: %s", req.Cmd)
}
