// Package rename changes the text of an editor's OS window.
//
// Two backends exist. HandleRenamer enumerates native windows through a
// WindowAPI adapter and caches the handle it finds per editor window.
// HelperRenamer delegates to an external script that locates the window
// itself. Both are best effort: a failed rename leaves the title unchanged.
package rename

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnsupported is returned when a backend cannot run on this platform.
var ErrUnsupported = errors.New("window renaming not supported on this platform")

// Renamer retitles the OS window whose current text contains official.
type Renamer interface {
	Rename(ctx context.Context, windowID int64, official, desired string) error
}

// Forgetter is implemented by renamers that cache per-window state.
type Forgetter interface {
	Forget(windowID int64)
}

// Backend names accepted by Select.
const (
	BackendAuto   = "auto"
	BackendNative = "native"
	BackendHelper = "helper"
	BackendNone   = "none"
)

// NopRenamer does nothing.
type NopRenamer struct{}

func (NopRenamer) Rename(context.Context, int64, string, string) error { return nil }

// Resolve maps "auto" to the backend used on goos.
func Resolve(backend, goos string) string {
	b := strings.ToLower(strings.TrimSpace(backend))
	if b != "" && b != BackendAuto {
		return b
	}
	switch goos {
	case "windows":
		return BackendNative
	case "linux", "freebsd", "openbsd", "netbsd":
		return BackendHelper
	default:
		return BackendNone
	}
}

// Select builds the renamer for backend on the running platform. helper is
// only consulted for the helper backend.
func Select(backend string, helper *HelperRenamer) (Renamer, string, error) {
	name := Resolve(backend, runtime.GOOS)
	switch name {
	case BackendNative:
		api, err := NativeAPI()
		if err != nil {
			return nil, name, err
		}
		return NewHandleRenamer(api), name, nil
	case BackendHelper:
		if helper == nil {
			return nil, name, errors.New("helper backend requires a helper renamer")
		}
		return helper, name, nil
	case BackendNone:
		return NopRenamer{}, name, nil
	default:
		return nil, name, fmt.Errorf("unknown backend %q (auto|native|helper|none)", backend)
	}
}
