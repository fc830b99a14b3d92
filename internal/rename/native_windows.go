//go:build windows

package rename

import (
	"fmt"
	"unsafe"

	winapi "golang.org/x/sys/windows"
)

var (
	user32                   = winapi.NewLazySystemDLL("user32.dll")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procSetWindowTextW       = user32.NewProc("SetWindowTextW")

	// One callback slot for the process; the collected slice travels in lparam.
	enumCallback = winapi.NewCallback(func(hwnd winapi.HWND, lparam uintptr) uintptr {
		handles := (*[]Handle)(unsafe.Pointer(lparam))
		*handles = append(*handles, Handle(hwnd))
		return 1
	})
)

type win32API struct{}

// NativeAPI returns the Win32 window adapter.
func NativeAPI() (WindowAPI, error) {
	if err := procSetWindowTextW.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return win32API{}, nil
}

func (win32API) EnumerateWindows() ([]Handle, error) {
	var handles []Handle
	if err := winapi.EnumWindows(enumCallback, unsafe.Pointer(&handles)); err != nil {
		return nil, err
	}
	visible := handles[:0]
	for _, h := range handles {
		if winapi.IsWindowVisible(winapi.HWND(h)) {
			visible = append(visible, h)
		}
	}
	return visible, nil
}

func (win32API) WindowTitle(h Handle) (string, error) {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if n == 0 {
		return "", nil
	}
	buf := make([]uint16, n+1)
	got, err := winapi.GetWindowText(winapi.HWND(h), &buf[0], int32(len(buf)))
	if got == 0 && err != nil {
		return "", err
	}
	return DecodeTitle(buf[:got]), nil
}

func (win32API) SetWindowTitle(h Handle, title string) error {
	buf := EncodeTitle(title)
	r, _, err := procSetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])))
	if r == 0 {
		return err
	}
	return nil
}
