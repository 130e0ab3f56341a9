package ui

import (
	"errors"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"github.com/ncruces/zenity"
)

// FileChooser asks the user for an image file. done receives an empty path
// when the user cancels. It is always called on the UI goroutine.
type FileChooser func(parent fyne.Window, startDir string, done func(path string, err error))

var imageExtensions = []string{".png", ".gif", ".jpg", ".jpeg", ".bmp", ".webp"}

// startDirectory returns the directory of the current image, or the user's
// home directory when no image is set.
func startDirectory(imagePath string) string {
	if imagePath != "" {
		return filepath.Dir(imagePath)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return homeDir
}

// nativeFileChooser uses the system picker through zenity and falls back to
// the Fyne dialog when zenity is missing or fails.
func nativeFileChooser(parent fyne.Window, startDir string, done func(string, error)) {
	if !zenity.IsAvailable() {
		fyneFileChooser(parent, startDir, done)
		return
	}

	go func() {
		filename, err := zenity.SelectFile(
			zenity.Title("Choose a relax image..."),
			zenity.Filename(startDir+string(filepath.Separator)),
			zenity.FileFilters{
				{Name: "PNG", Patterns: []string{"*.png"}, CaseFold: true},
				{Name: "GIF", Patterns: []string{"*.gif"}, CaseFold: true},
				{Name: "All files", Patterns: []string{"*"}, CaseFold: false},
			},
		)
		fyne.Do(func() {
			if errors.Is(err, zenity.ErrCanceled) {
				done("", nil)
				return
			}
			if err != nil {
				fyneFileChooser(parent, startDir, done)
				return
			}
			done(filename, nil)
		})
	}()
}

// fyneFileChooser is the toolkit's own file dialog.
func fyneFileChooser(parent fyne.Window, startDir string, done func(string, error)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			done("", err)
			return
		}
		if reader == nil {
			done("", nil)
			return
		}
		defer reader.Close()
		done(reader.URI().Path(), nil)
	}, parent)

	fileDialog.SetFilter(fynestorage.NewExtensionFileFilter(imageExtensions))
	if startDir != "" {
		if listable, err := fynestorage.ListerForURI(fynestorage.NewFileURI(startDir)); err == nil {
			fileDialog.SetLocation(listable)
		}
	}
	fileDialog.Show()
}
