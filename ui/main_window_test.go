package ui

import (
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"breaktimer/models"
	"breaktimer/schedule"
	"breaktimer/storage"
)

type countingChime struct{ plays int }

func (c *countingChime) Play() { c.plays++ }

type testHarness struct {
	mw      *MainWindow
	sched   *schedule.Manual
	store   *storage.Manager
	chime   *countingChime
	chooser string
}

func newHarness(t *testing.T, settings *models.Settings) *testHarness {
	t.Helper()
	a := test.NewTempApp(t)
	h := &testHarness{
		sched: schedule.NewManual(),
		store: storage.NewManager(filepath.Join(t.TempDir(), storage.FileName), nil),
		chime: &countingChime{},
	}
	if settings != nil {
		if err := h.store.Save(settings); err != nil {
			t.Fatal(err)
		}
	}
	h.mw = NewMainWindow(a, Options{
		Storage:   h.store,
		Scheduler: h.sched,
		Chime:     h.chime,
		Rand:      rand.New(rand.NewSource(7)),
		ChooseImage: func(_ fyne.Window, _ string, done func(string, error)) {
			done(h.chooser, nil)
		},
	})
	return h
}

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relax.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitialState(t *testing.T) {
	h := newHarness(t, &models.Settings{Interval: 90})

	if h.mw.intervalEntry.Text != "90" {
		t.Errorf("Expected interval entry 90, got %q", h.mw.intervalEntry.Text)
	}
	if h.mw.clockLabel.Text != "00:00" {
		t.Errorf("Expected clock 00:00, got %q", h.mw.clockLabel.Text)
	}
	if h.mw.status.Text() != "Ready." {
		t.Errorf("Expected Ready., got %q", h.mw.status.Text())
	}
	if h.mw.thumbnailText.Hidden {
		t.Error("Default frame text should be shown without an image")
	}
}

func TestRunButtonTogglesCountdown(t *testing.T) {
	h := newHarness(t, nil)

	test.Tap(h.mw.runButton)
	if h.mw.runButton.Text != "Stop" || h.mw.status.Text() != "Running..." {
		t.Errorf("Expected running UI, got button %q status %q", h.mw.runButton.Text, h.mw.status.Text())
	}

	h.sched.Advance(75 * time.Second)
	if h.mw.clockLabel.Text != "01:16" {
		t.Errorf("Expected clock 01:16, got %q", h.mw.clockLabel.Text)
	}

	test.Tap(h.mw.runButton)
	if h.mw.runButton.Text != "Run" || h.mw.clockLabel.Text != "00:00" || h.mw.status.Text() != "Ready." {
		t.Errorf("Expected reset UI, got button %q clock %q status %q",
			h.mw.runButton.Text, h.mw.clockLabel.Text, h.mw.status.Text())
	}
	if h.sched.Pending() != 0 {
		t.Errorf("Expected no pending ticks, got %d", h.sched.Pending())
	}
}

func TestExpiryOpensOverlayAndDismissRestores(t *testing.T) {
	h := newHarness(t, nil)
	h.mw.intervalEntry.SetText("3")

	test.Tap(h.mw.runButton)
	h.sched.Advance(3 * time.Second)

	if h.mw.overlay == nil {
		t.Fatal("Expected the break overlay after expiry")
	}
	if h.mw.overlay.Break().Reason != models.ReasonExpired {
		t.Errorf("Expected expired break, got %q", h.mw.overlay.Break().Reason)
	}
	if !h.mw.overlay.Scene().Placeholder() {
		t.Error("Expected placeholder without an image")
	}
	if h.mw.controller.Running() || h.mw.clockLabel.Text != "00:00" {
		t.Error("Countdown should be stopped and reset after expiry")
	}
	if h.chime.plays != 1 {
		t.Errorf("Expected one chime, got %d", h.chime.plays)
	}

	h.mw.overlay.handleKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if h.mw.overlay != nil {
		t.Error("Overlay should be gone after Escape")
	}
}

func TestPreviewWithMissingImageFallsBack(t *testing.T) {
	h := newHarness(t, &models.Settings{Interval: 60, ImagePath: filepath.Join(t.TempDir(), "missing.png")})

	h.mw.onPreview()
	if h.mw.overlay == nil {
		t.Fatal("Expected overlay")
	}
	if !h.mw.overlay.Scene().Placeholder() {
		t.Error("Expected placeholder for a missing image")
	}
	if h.mw.status.Text() != "Image format not supported." || h.mw.status.Kind() != StatusError {
		t.Errorf("Unexpected status %q", h.mw.status.Text())
	}

	first := h.mw.overlay
	h.mw.onPreview()
	if h.mw.overlay != first {
		t.Error("A second preview should not replace the open overlay")
	}
	first.Dismiss()
	first.Dismiss()
	if h.mw.overlay != nil {
		t.Error("Overlay should be cleared after dismiss")
	}
}

func TestPreviewWithImage(t *testing.T) {
	h := newHarness(t, &models.Settings{Interval: 60, ImagePath: writeTestPNG(t, 1300, 300)})

	h.mw.onPreview()
	scene := h.mw.overlay.Scene()
	if scene.Placeholder() {
		t.Fatal("Expected image scene")
	}
	if scene.Size != image.Pt(325, 300) {
		t.Errorf("Expected 325x300, got %v", scene.Size)
	}
}

func TestInvalidIntervalReverts(t *testing.T) {
	h := newHarness(t, &models.Settings{Interval: 300})

	h.mw.intervalEntry.SetText("abc")
	h.mw.commitInterval()
	if h.mw.intervalEntry.Text != "300" || h.mw.settings.Interval != 300 {
		t.Errorf("Expected revert to 300, got entry %q settings %d", h.mw.intervalEntry.Text, h.mw.settings.Interval)
	}

	h.mw.intervalEntry.SetText("0")
	h.mw.commitInterval()
	if h.mw.settings.Interval != 300 {
		t.Errorf("Zero should be rejected, got %d", h.mw.settings.Interval)
	}
}

func TestSavePersistsSettings(t *testing.T) {
	h := newHarness(t, nil)
	h.mw.intervalEntry.SetText("45")
	h.mw.onSave()

	if got := h.store.Load(); got.Interval != 45 {
		t.Errorf("Expected saved interval 45, got %d", got.Interval)
	}
	if h.mw.status.Text() != "Settings saved." {
		t.Errorf("Unexpected status %q", h.mw.status.Text())
	}
	if h.mw.controller.Interval() != 45 {
		t.Errorf("Controller should use the new interval, got %d", h.mw.controller.Interval())
	}
}

func TestChooseAndClearImage(t *testing.T) {
	h := newHarness(t, nil)
	h.chooser = writeTestPNG(t, 50, 40)

	h.mw.onChooseImage()
	if h.mw.settings.ImagePath != h.chooser {
		t.Errorf("Expected image path %q, got %q", h.chooser, h.mw.settings.ImagePath)
	}
	if h.mw.status.Text() != "Image loaded." || h.mw.thumbnail.Hidden {
		t.Errorf("Expected loaded thumbnail, status %q", h.mw.status.Text())
	}

	h.mw.onClearImage()
	if h.mw.settings.ImagePath != "" || !h.mw.thumbnail.Hidden {
		t.Error("Clear should drop the image")
	}
	if h.mw.status.Text() != "Image cleared. Using default Relax frame." {
		t.Errorf("Unexpected status %q", h.mw.status.Text())
	}
}

func TestChooseUnsupportedImage(t *testing.T) {
	h := newHarness(t, nil)
	h.chooser = filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(h.chooser, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	h.mw.onChooseImage()
	if h.mw.status.Text() != "Image format not supported." {
		t.Errorf("Unexpected status %q", h.mw.status.Text())
	}
}

func TestChooseCancelled(t *testing.T) {
	h := newHarness(t, &models.Settings{Interval: 60, ImagePath: "/keep/me.png"})
	h.chooser = ""

	h.mw.onChooseImage()
	if h.mw.settings.ImagePath != "/keep/me.png" {
		t.Errorf("Cancel should keep the path, got %q", h.mw.settings.ImagePath)
	}
}

func TestFilterIntervalInput(t *testing.T) {
	h := newHarness(t, nil)
	h.mw.intervalEntry.Text = "1a2b"
	h.mw.filterIntervalInput("1a2b")
	if h.mw.intervalEntry.Text != "12" {
		t.Errorf("Expected digits only, got %q", h.mw.intervalEntry.Text)
	}
}

func TestStartDirectory(t *testing.T) {
	if got := startDirectory(filepath.Join("pics", "sea.png")); got != "pics" {
		t.Errorf("Expected pics, got %q", got)
	}
	home, err := os.UserHomeDir()
	if err == nil && startDirectory("") != home {
		t.Errorf("Expected home directory %q, got %q", home, startDirectory(""))
	}
}

func TestStatusLabel(t *testing.T) {
	test.NewTempApp(t)
	sl := NewStatusLabel("Ready.")
	test.WidgetRenderer(sl)

	sl.SetStatus("Oops", StatusError)
	if sl.Text() != "Oops" || sl.Kind() != StatusError {
		t.Errorf("Unexpected state %q %v", sl.Text(), sl.Kind())
	}
	if sl.textObj.Text != "Oops" {
		t.Errorf("Renderer not refreshed, got %q", sl.textObj.Text)
	}
}

func TestDrawIcon(t *testing.T) {
	img := drawIcon(iconSize)
	if img.Bounds().Dx() != iconSize {
		t.Fatalf("Unexpected icon size %v", img.Bounds())
	}
	if img.NRGBAAt(0, 0) != iconBackground {
		t.Error("Corner should be background")
	}
	if img.NRGBAAt(iconSize/4, iconSize/2+6) != iconDisc {
		t.Error("Inside of the disc should be green")
	}
	if appIcon() == nil {
		t.Error("Expected an icon resource")
	}
}
