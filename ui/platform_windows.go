//go:build windows

package ui

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const appUserModelID = "breaktimer.desktop.0.1"

// SetTaskbarIdentity gives the process its own AppUserModelID so Windows
// groups it under the breaktimer icon instead of the host executable's.
func SetTaskbarIdentity() error {
	proc := windows.NewLazySystemDLL("shell32.dll").NewProc("SetCurrentProcessExplicitAppUserModelID")
	if err := proc.Find(); err != nil {
		return err
	}

	id, err := windows.UTF16PtrFromString(appUserModelID)
	if err != nil {
		return err
	}
	hr, _, _ := proc.Call(uintptr(unsafe.Pointer(id)))
	if hr != 0 {
		return fmt.Errorf("SetCurrentProcessExplicitAppUserModelID failed: HRESULT 0x%08x", uint32(hr))
	}
	return nil
}
