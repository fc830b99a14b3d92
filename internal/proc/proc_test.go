//go:build !windows

package proc

import (
	"context"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestStartPipesOutput(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRunner(zaptest.NewLogger(t))
	var mu sync.Mutex
	var lines []string
	ch, err := r.Start("echo", exec.Command("sh", "-c", "echo one; echo; echo two >&2"), func(l string) {
		mu.Lock()
		lines = append(lines, l)
		mu.Unlock()
	})
	require.NoError(t, err)

	select {
	case <-ch.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("child did not exit")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"one", "two"}, lines)
	assert.Equal(t, 0, r.Running())
}

func TestStartDiscardsOutputWithoutCallback(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRunner(nil)
	ch, err := r.Start("true", exec.Command("sh", "-c", "echo ignored; exit 3"), nil)
	require.NoError(t, err)
	<-ch.Done()
	assert.Equal(t, 0, r.Running())
}

func TestStartMissingBinary(t *testing.T) {
	r := NewRunner(nil)
	_, err := r.Start("nope", exec.Command("/definitely/not/here"), nil)
	require.Error(t, err)
	assert.Equal(t, 0, r.Running())
}

func TestStopAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRunner(zaptest.NewLogger(t))
	ch, err := r.Start("sleep", exec.Command("sleep", "30"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Running())

	require.NoError(t, r.StopAll(context.Background()))
	<-ch.Done()
	assert.Equal(t, 0, r.Running())
}
