//go:build !windows

package rename

// NativeAPI is only available on Windows.
func NativeAPI() (WindowAPI, error) { return nil, ErrUnsupported }
