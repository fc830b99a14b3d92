// Package proc starts short-lived helper processes and reaps them in the
// background.
package proc

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Child is a started helper process.
type Child struct {
	Cmd  *exec.Cmd
	Name string
	done chan struct{}
}

// Done is closed once the process has exited and its output is drained.
func (c *Child) Done() <-chan struct{} { return c.done }

// Runner tracks helper processes until they exit. Callers never wait on a
// child; there is no per-invocation timeout.
type Runner struct {
	mu     sync.Mutex
	childs map[*Child]struct{}
	log    *zap.Logger
}

func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{childs: map[*Child]struct{}{}, log: logger}
}

// Start launches cmd. When onLine is non-nil every non-blank stdout/stderr
// line is passed to it; otherwise output is discarded.
func (r *Runner) Start(name string, cmd *exec.Cmd, onLine func(string)) (*Child, error) {
	var pipes []io.ReadCloser
	if onLine != nil {
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return nil, fmt.Errorf("%s stdout: %w", name, err)
		}
		stderr, err := cmd.StderrPipe()
		if err != nil {
			return nil, fmt.Errorf("%s stderr: %w", name, err)
		}
		pipes = append(pipes, stdout, stderr)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}
	ch := &Child{Cmd: cmd, Name: name, done: make(chan struct{})}
	r.mu.Lock()
	r.childs[ch] = struct{}{}
	r.mu.Unlock()

	go r.reap(ch, pipes, onLine)
	return ch, nil
}

func (r *Runner) reap(ch *Child, pipes []io.ReadCloser, onLine func(string)) {
	var wg sync.WaitGroup
	for _, p := range pipes {
		wg.Add(1)
		go func(rc io.ReadCloser) {
			defer wg.Done()
			pipeLines(rc, onLine)
		}(p)
	}
	// Wait closes the pipes, so drain them first.
	wg.Wait()
	err := ch.Cmd.Wait()
	if err != nil {
		r.log.Debug("helper exited", zap.String("name", ch.Name), zap.Error(err))
	}
	r.mu.Lock()
	delete(r.childs, ch)
	r.mu.Unlock()
	close(ch.done)
}

func pipeLines(rc io.Reader, onLine func(string)) {
	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		onLine(line)
	}
}

// Running reports how many children have not exited yet.
func (r *Runner) Running() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.childs)
}

// StopAll interrupts every running child and kills whatever is left when
// ctx expires or after a short grace period.
func (r *Runner) StopAll(ctx context.Context) error {
	r.mu.Lock()
	childs := make([]*Child, 0, len(r.childs))
	for ch := range r.childs {
		childs = append(childs, ch)
	}
	r.mu.Unlock()

	var first error
	for _, ch := range childs {
		r.log.Info("stopping helper", zap.String("name", ch.Name), zap.Int("pid", ch.Cmd.Process.Pid))
		if err := terminate(ch.Cmd); err != nil && first == nil {
			first = fmt.Errorf("%s: %w", ch.Name, err)
		}
	}
	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	for _, ch := range childs {
		select {
		case <-ch.done:
		case <-waitCtx.Done():
			_ = ch.Cmd.Process.Kill()
			<-ch.done
		}
	}
	return first
}

func terminate(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return errors.New("no process")
	}
	if runtime.GOOS == "windows" {
		return cmd.Process.Kill()
	}
	err := cmd.Process.Signal(os.Interrupt)
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}
	return err
}
