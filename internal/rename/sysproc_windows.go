//go:build windows

package rename

import (
	"syscall"

	winapi "golang.org/x/sys/windows"
)

// helperSysProcAttr keeps a console window from flashing up per rename.
func helperSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true, CreationFlags: winapi.CREATE_NO_WINDOW}
}
