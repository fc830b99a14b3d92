//go:build !windows

package rename

import "syscall"

// helperSysProcAttr puts the helper in its own process group so a stuck
// xdotool does not receive the daemon's terminal signals.
func helperSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
