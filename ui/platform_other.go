//go:build !windows

package ui

// SetTaskbarIdentity is only needed on Windows.
func SetTaskbarIdentity() error {
	return nil
}
