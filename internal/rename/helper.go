package rename

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"wintitle/internal/proc"
)

// HelperScriptName is the file InstallHelper writes into the cache dir.
const HelperScriptName = "wintitle_rename.sh"

// HelperScript retitles every visible editor window whose name contains $1
// to $2. It needs xdotool.
const HelperScript = `#!/usr/bin/env bash
# usage: wintitle_rename.sh <official title> <desired title>
official="$1"
desired="$2"
for wid in $(xdotool search --onlyvisible --class subl 2>/dev/null); do
    name=$(xdotool getwindowname "$wid" 2>/dev/null)
    if [[ "$name" == *"$official"* ]]; then
        xdotool set_window --name "$desired" "$wid"
    fi
done
`

// HelperRenamer runs an external command as `<command...> <official> <desired>`.
// The command is responsible for finding the window. Its exit status is
// ignored and its output is logged only when debug reports true.
type HelperRenamer struct {
	runner *proc.Runner
	log    *zap.Logger
	debug  func() bool

	mu      sync.RWMutex
	command []string
}

// NewHelperRenamer returns a renamer with no command configured; call
// InstallHelper or SetCommand before renaming.
func NewHelperRenamer(runner *proc.Runner, logger *zap.Logger, debug func() bool) *HelperRenamer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if debug == nil {
		debug = func() bool { return false }
	}
	return &HelperRenamer{runner: runner, log: logger, debug: debug}
}

// SetCommand overrides the helper invocation, e.g. {"bash", "/path/x.sh"}.
func (r *HelperRenamer) SetCommand(argv ...string) {
	r.mu.Lock()
	r.command = append([]string(nil), argv...)
	r.mu.Unlock()
}

// Command returns the configured invocation prefix.
func (r *HelperRenamer) Command() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.command...)
}

// InstallHelper writes HelperScript into dir and points the renamer at it,
// unless a command was already set explicitly.
func (r *HelperRenamer) InstallHelper(dir string) (string, error) {
	path, err := WriteHelperScript(dir)
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	if len(r.command) == 0 {
		r.command = []string{"bash", path}
	}
	r.mu.Unlock()
	return path, nil
}

// WriteHelperScript writes HelperScript to dir/HelperScriptName.
func WriteHelperScript(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create helper dir: %w", err)
	}
	path := filepath.Join(dir, HelperScriptName)
	if err := os.WriteFile(path, []byte(HelperScript), 0o755); err != nil {
		return "", fmt.Errorf("write helper script: %w", err)
	}
	return path, nil
}

// Rename starts the helper and returns without waiting for it.
func (r *HelperRenamer) Rename(_ context.Context, windowID int64, official, desired string) error {
	argv := r.Command()
	if len(argv) == 0 {
		return errors.New("helper command not installed")
	}
	debug := r.debug()
	if debug {
		r.log.Debug("looking for window", zap.Int64("window", windowID), zap.String("official", official))
	}
	args := append(argv[1:len(argv):len(argv)], official, desired)
	cmd := exec.Command(argv[0], args...)
	cmd.SysProcAttr = helperSysProcAttr()

	var onLine func(string)
	if debug {
		onLine = func(line string) {
			r.log.Debug("helper output", zap.Int64("window", windowID), zap.String("line", line))
		}
	}
	if _, err := r.runner.Start("rename-helper", cmd, onLine); err != nil {
		return err
	}
	return nil
}
