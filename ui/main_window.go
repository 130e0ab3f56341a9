package ui

import (
	"fmt"
	"image"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"breaktimer/countdown"
	"breaktimer/imaging"
	"breaktimer/logging"
	"breaktimer/models"
	"breaktimer/overlay"
	"breaktimer/schedule"
	"breaktimer/storage"
	"breaktimer/version"
)

const (
	statusReady       = "Ready."
	statusRunning     = "Running..."
	statusLoaded      = "Image loaded."
	statusUnsupported = "Image format not supported."
	statusCleared     = "Image cleared. Using default Relax frame."
	statusSaved       = "Settings saved."
	defaultFrameText  = "Default relax frame"
)

// Chimer announces the start of a break.
type Chimer interface {
	Play()
}

// Options holds the collaborators of the main window. Zero values get defaults.
type Options struct {
	Storage     *storage.Manager
	Scheduler   schedule.Scheduler
	Logger      *slog.Logger
	Chime       Chimer
	Rand        *rand.Rand
	ChooseImage FileChooser
}

// MainWindow represents the main application window
type MainWindow struct {
	app        fyne.App
	window     fyne.Window
	storage    *storage.Manager
	settings   *models.Settings
	controller *countdown.Controller
	logger     *slog.Logger
	chime      Chimer
	rng        *rand.Rand
	choose     FileChooser

	intervalEntry *widget.Entry
	thumbnail     *canvas.Image
	thumbnailText *widget.Label
	clockLabel    *widget.Label
	runButton     *widget.Button
	status        *StatusLabel
	trayRun       *fyne.MenuItem
	trayMenu      *fyne.Menu

	overlay *BreakOverlay
}

// NewMainWindow creates a new main window
func NewMainWindow(a fyne.App, opts Options) *MainWindow {
	logger := logging.OrDiscard(opts.Logger)
	if opts.Storage == nil {
		opts.Storage = storage.NewManager("", logger)
	}
	if opts.Scheduler == nil {
		opts.Scheduler = schedule.NewTimer(fyne.Do)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.ChooseImage == nil {
		opts.ChooseImage = nativeFileChooser
	}

	if icon := appIcon(); icon != nil {
		a.SetIcon(icon)
	}

	window := a.NewWindow("breaktimer")
	window.SetMaster()
	window.SetFixedSize(true)

	mw := &MainWindow{
		app:     a,
		window:  window,
		storage: opts.Storage,
		logger:  logger.With(slog.String("component", "ui")),
		chime:   opts.Chime,
		rng:     opts.Rand,
		choose:  opts.ChooseImage,
	}

	mw.settings = mw.storage.Load()
	mw.controller = countdown.NewController(opts.Scheduler, mw.settings.Interval, logger)
	mw.controller.OnChange(mw.onCountdownChange)
	mw.controller.OnExpired(func() { mw.openBreak(models.ReasonExpired) })

	mw.setupUI()
	mw.setupTray()
	window.SetCloseIntercept(mw.onQuit)

	mw.logger.Debug("main window ready", "settings_path", mw.storage.Path(),
		"interval", mw.settings.Interval, "img_path", mw.settings.ImagePath)
	return mw
}

// ShowAndRun shows the window and runs the application
func (mw *MainWindow) ShowAndRun() {
	mw.window.ShowAndRun()
}

// setupUI sets up the user interface
func (mw *MainWindow) setupUI() {
	mw.intervalEntry = widget.NewEntry()
	mw.intervalEntry.SetText(strconv.Itoa(mw.settings.Interval))
	mw.intervalEntry.OnChanged = mw.filterIntervalInput
	mw.intervalEntry.OnSubmitted = func(string) { mw.commitInterval() }
	intervalRow := container.NewBorder(nil, nil, nil, widget.NewLabel("in seconds"), mw.intervalEntry)

	mw.thumbnail = canvas.NewImageFromImage(nil)
	mw.thumbnail.FillMode = canvas.ImageFillOriginal
	mw.thumbnailText = widget.NewLabelWithStyle(defaultFrameText, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	thumbBox := container.NewStack(mw.thumbnail, mw.thumbnailText)
	imageButtons := container.NewVBox(
		widget.NewButton("Choose...", mw.onChooseImage),
		widget.NewButton("Clear", mw.onClearImage),
	)
	imageRow := container.NewBorder(nil, nil, nil, imageButtons, thumbBox)
	mw.setThumbnail()

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Interval:"), intervalRow,
		widget.NewLabel("Image:"), imageRow,
	)

	mw.clockLabel = widget.NewLabelWithStyle(countdown.FormatClock(0), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	mw.runButton = widget.NewButton("Run", mw.onRun)
	mw.runButton.Importance = widget.HighImportance
	controls := container.NewGridWithColumns(5,
		mw.runButton,
		widget.NewButton("Preview", mw.onPreview),
		widget.NewButton("Save", mw.onSave),
		widget.NewButton("Info", mw.onInfo),
		widget.NewButton("Quit", mw.onQuit),
	)

	mw.status = NewStatusLabel(statusReady)

	content := container.NewBorder(nil, container.NewVBox(controls, mw.status), nil, nil,
		container.NewVBox(form, mw.clockLabel))
	mw.window.SetContent(container.NewPadded(content))

	mw.window.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { mw.onSave() })
}

// setupTray adds a system tray menu on desktop drivers
func (mw *MainWindow) setupTray() {
	desk, ok := mw.app.(desktop.App)
	if !ok {
		return
	}

	mw.trayRun = fyne.NewMenuItem("Run", mw.onRun)
	quit := fyne.NewMenuItem("Quit", mw.onQuit)
	quit.IsQuit = true
	mw.trayMenu = fyne.NewMenu("breaktimer",
		fyne.NewMenuItem("Show", func() {
			if mw.overlay == nil {
				mw.window.Show()
			}
		}),
		mw.trayRun,
		fyne.NewMenuItemSeparator(),
		quit,
	)
	desk.SetSystemTrayMenu(mw.trayMenu)
	if icon := mw.app.Icon(); icon != nil {
		desk.SetSystemTrayIcon(icon)
	}
}

// filterIntervalInput keeps only digits in the interval entry
func (mw *MainWindow) filterIntervalInput(text string) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)
	if digits != text {
		mw.intervalEntry.SetText(digits)
	}
}

// commitInterval validates the entry and applies it, reverting bad input to
// the last valid interval
func (mw *MainWindow) commitInterval() {
	value, err := models.ParseInterval(mw.intervalEntry.Text, mw.settings.Interval)
	if err != nil {
		mw.logger.Debug("interval input rejected", "input", mw.intervalEntry.Text, "reverted_to", value)
		mw.setStatus(fmt.Sprintf("Invalid interval, using %d seconds.", value), StatusError)
	}
	mw.intervalEntry.SetText(strconv.Itoa(value))
	mw.settings.Interval = value
	if err := mw.controller.SetInterval(value); err != nil {
		mw.logger.Error("interval not applied", "err", err)
	}
}

// onRun starts or stops the countdown
func (mw *MainWindow) onRun() {
	mw.commitInterval()
	mw.controller.Toggle()
}

// onCountdownChange mirrors the controller state in the widgets
func (mw *MainWindow) onCountdownChange(state countdown.State) {
	mw.clockLabel.SetText(state.Clock())

	label := "Run"
	if state.Running {
		label = "Stop"
	}
	if mw.runButton.Text != label {
		mw.runButton.SetText(label)
		if state.Running {
			mw.setStatus(statusRunning, StatusActive)
		} else {
			mw.setStatus(statusReady, StatusInfo)
		}
		if mw.trayRun != nil {
			mw.trayRun.Label = label
			mw.trayMenu.Refresh()
		}
	}
}

// onPreview shows the break overlay without waiting for the countdown
func (mw *MainWindow) onPreview() {
	mw.openBreak(models.ReasonPreview)
}

// openBreak hides the main window and shows the overlay
func (mw *MainWindow) openBreak(reason models.BreakReason) {
	if mw.overlay != nil {
		mw.logger.Debug("break already showing", "break", mw.overlay.Break().ID)
		return
	}

	brk := models.NewBreak(reason, mw.settings.ImagePath)
	scene, err := overlay.Prepare(brk.ImagePath, mw.rng)
	if err != nil {
		mw.logger.Warn("relax image unavailable, using placeholder", "break", brk.ID, "err", err)
		mw.setStatus(statusUnsupported, StatusError)
	}

	mw.overlay = NewBreakOverlay(mw.app, scene, brk, mw.closeBreak, mw.logger)
	mw.window.Hide()
	mw.overlay.Show()
	if mw.chime != nil {
		mw.chime.Play()
	}
}

// closeBreak restores the main window once the overlay is dismissed
func (mw *MainWindow) closeBreak() {
	mw.window.Show()
	mw.overlay = nil
}

// onChooseImage opens the file chooser for the relax image
func (mw *MainWindow) onChooseImage() {
	mw.choose(mw.window, startDirectory(mw.settings.ImagePath), func(path string, err error) {
		if err != nil {
			mw.logger.Warn("file chooser failed", "err", err)
			dialog.ShowError(err, mw.window)
			return
		}
		if path == "" {
			return
		}
		mw.settings.ImagePath = path
		if mw.setThumbnail() {
			mw.setStatus(statusLoaded, StatusInfo)
		} else {
			mw.setStatus(statusUnsupported, StatusError)
		}
	})
}

// onClearImage switches back to the generated relax frame
func (mw *MainWindow) onClearImage() {
	mw.settings.ImagePath = ""
	mw.setThumbnail()
	mw.setStatus(statusCleared, StatusInfo)
}

// setThumbnail loads the preview of the configured image. It reports false
// and shows the default frame text when the image cannot be used.
func (mw *MainWindow) setThumbnail() bool {
	thumb := mw.loadThumbnail()
	if thumb == nil {
		mw.thumbnail.Image = nil
		mw.thumbnail.Hide()
		mw.thumbnailText.Show()
		return false
	}

	size := thumb.Bounds().Size()
	mw.thumbnail.Image = thumb
	mw.thumbnail.SetMinSize(fyne.NewSize(float32(size.X), float32(size.Y)))
	mw.thumbnail.Show()
	mw.thumbnail.Refresh()
	mw.thumbnailText.Hide()
	return true
}

func (mw *MainWindow) loadThumbnail() image.Image {
	if mw.settings.ImagePath == "" {
		return nil
	}
	img, err := imaging.Thumbnail(mw.settings.ImagePath)
	if err != nil {
		mw.logger.Debug("thumbnail unavailable", "err", err)
		return nil
	}
	return img
}

// onSave writes the settings, surfacing any failure
func (mw *MainWindow) onSave() {
	mw.commitInterval()
	if err := mw.saveSettings(); err != nil {
		dialog.ShowError(err, mw.window)
		return
	}
	mw.setStatus(statusSaved, StatusInfo)
}

// saveSettings saves the settings to storage
func (mw *MainWindow) saveSettings() error {
	if err := mw.storage.Save(mw.settings); err != nil {
		mw.logger.Error("settings not saved", "err", err)
		mw.setStatus("Could not save settings.", StatusError)
		return err
	}
	return nil
}

// onInfo shows program information
func (mw *MainWindow) onInfo() {
	detail := strings.Join([]string{
		"Relax yourself away from computer.",
		"",
		"Supported image formats: " + imaging.Formats(),
		"",
		version.Banner(),
	}, "\n")
	dialog.ShowInformation("About breaktimer", detail, mw.window)
}

// onQuit saves the settings and exits. A failed save is reported before
// quitting.
func (mw *MainWindow) onQuit() {
	mw.controller.Stop()
	mw.commitInterval()
	if err := mw.saveSettings(); err != nil {
		errDialog := dialog.NewError(err, mw.window)
		errDialog.SetOnClosed(mw.app.Quit)
		errDialog.Show()
		return
	}
	mw.app.Quit()
}

func (mw *MainWindow) setStatus(text string, kind StatusKind) {
	mw.status.SetStatus(text, kind)
}
