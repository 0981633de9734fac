package wm

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"workspace-grid/pkg/logger"
)

// runFunc runs a binary and returns its stdout.
type runFunc func(name string, args ...string) ([]byte, error)

func execRun(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// I3 talks to i3 (or sway, through swaymsg) by running its msg binary.
type I3 struct {
	binary string
	log    *logger.Logger
	run    runFunc
}

func NewI3(binary string, log *logger.Logger) (*I3, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		log.Error("IPC binary not found in PATH", err, "binary", binary)
		return nil, fmt.Errorf("%s not found in PATH: %w: %w", binary, ErrIPC, err)
	}
	log.Debug("Found IPC binary", "path", path)

	return &I3{binary: path, log: log, run: execRun}, nil
}

func (c *I3) Name() string {
	return "i3"
}

// workspaceRecord is the part of a get_workspaces reply we rely on. Both
// fields are required.
type workspaceRecord struct {
	Num     *int  `json:"num"`
	Focused *bool `json:"focused"`
}

func (c *I3) ListWorkspaces() (WorkspaceSet, error) {
	output, err := c.run(c.binary, "-t", "get_workspaces")
	if err != nil {
		c.log.Error("Failed to query workspaces", err, "stderr", stderrOf(err))
		return nil, fmt.Errorf("%w: get_workspaces: %w", ErrIPC, err)
	}

	set, err := decodeWorkspaces(output)
	if err != nil {
		c.log.Error("Failed to parse get_workspaces output", err, "output", string(output))
		return nil, err
	}

	c.log.Debug("Workspaces queried", "count", len(set))
	return set, nil
}

func decodeWorkspaces(data []byte) (WorkspaceSet, error) {
	var records []workspaceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: decode get_workspaces: %w", ErrIPC, err)
	}

	set := make(WorkspaceSet, 0, len(records))
	for i, r := range records {
		if r.Num == nil {
			return nil, fmt.Errorf("%w: workspace %d has no num field", ErrIPC, i)
		}
		if r.Focused == nil {
			return nil, fmt.Errorf("%w: workspace %d has no focused field", ErrIPC, i)
		}
		set = append(set, Workspace{Num: *r.Num, Focused: *r.Focused})
	}
	return set, nil
}

// commandResult is one entry of the reply to a run_command message.
type commandResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (c *I3) SendCommand(command string) error {
	output, err := c.run(c.binary, command)
	if err != nil {
		c.log.Error("Failed to run command", err, "command", command, "stderr", stderrOf(err))
		return fmt.Errorf("%w: %q: %w", ErrIPC, command, err)
	}

	var results []commandResult
	if err := json.Unmarshal(output, &results); err != nil {
		// The command ran; only an explicit failure in the reply counts.
		c.log.Debug("Unparsed command reply", "command", command, "output", string(output))
		return nil
	}
	for _, r := range results {
		if !r.Success {
			return fmt.Errorf("%w: %q rejected: %s", ErrIPC, command, r.Error)
		}
	}
	return nil
}

func stderrOf(err error) string {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return ""
}
