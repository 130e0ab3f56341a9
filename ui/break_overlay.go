package ui

import (
	"image"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"

	"breaktimer/logging"
	"breaktimer/models"
	"breaktimer/overlay"
)

const smallTextSize = 9

// BreakOverlay is the window shown during a break. It stays open until the
// user presses Escape or closes it.
type BreakOverlay struct {
	window    fyne.Window
	scene     overlay.Scene
	brk       *models.Break
	onDismiss func()
	dismissed bool
	logger    *slog.Logger
}

// NewBreakOverlay creates the overlay window for scene. onDismiss runs once,
// before the window closes.
func NewBreakOverlay(a fyne.App, scene overlay.Scene, brk *models.Break, onDismiss func(), logger *slog.Logger) *BreakOverlay {
	o := &BreakOverlay{
		window:    a.NewWindow("Relax"),
		scene:     scene,
		brk:       brk,
		onDismiss: onDismiss,
		logger:    logging.OrDiscard(logger).With(slog.String("component", "overlay"), slog.String("break", brk.ID)),
	}

	o.window.SetPadded(false)
	o.window.SetContent(renderScene(scene))
	o.window.Resize(toSize(scene.Size))
	o.window.SetFixedSize(true)
	o.window.Canvas().SetOnTypedKey(o.handleKey)
	o.window.SetCloseIntercept(o.Dismiss)
	return o
}

// Show brings the overlay up and gives it focus.
func (o *BreakOverlay) Show() {
	o.window.Show()
	o.window.CenterOnScreen()
	o.window.RequestFocus()
	o.logger.Info("break started", "reason", o.brk.Reason, "placeholder", o.scene.Placeholder())
}

// Dismiss ends the break. Calling it again has no effect.
func (o *BreakOverlay) Dismiss() {
	if o.dismissed {
		return
	}
	o.dismissed = true
	o.logger.Info("break finished", "duration", o.brk.Duration())
	if o.onDismiss != nil {
		o.onDismiss()
	}
	o.window.Close()
}

// Break returns the session this overlay belongs to.
func (o *BreakOverlay) Break() *models.Break {
	return o.brk
}

// Scene returns what the overlay draws.
func (o *BreakOverlay) Scene() overlay.Scene {
	return o.scene
}

func (o *BreakOverlay) handleKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		o.Dismiss()
	}
}

// renderScene turns a scene into absolutely positioned canvas objects.
func renderScene(scene overlay.Scene) fyne.CanvasObject {
	size := toSize(scene.Size)

	bg := canvas.NewRectangle(scene.Background)
	bg.Resize(size)
	objects := []fyne.CanvasObject{bg}

	if scene.Image != nil {
		img := canvas.NewImageFromImage(scene.Image)
		img.FillMode = canvas.ImageFillOriginal
		img.ScaleMode = canvas.ImageScalePixels
		img.Resize(size)
		objects = append(objects, img)
	}

	for _, l := range scene.Lines {
		line := canvas.NewLine(l.Color)
		line.StrokeWidth = 1
		line.Position1 = toPos(l.From)
		line.Position2 = toPos(l.To)
		objects = append(objects, line)
	}

	for _, o := range scene.Ovals {
		objects = append(objects, renderOval(o))
	}

	for _, l := range scene.Labels {
		objects = append(objects, renderLabel(l))
	}

	return container.New(&fixedLayout{size: size}, objects...)
}

// renderOval rasterizes an ellipse. canvas.Circle always keeps a round shape,
// so it cannot draw a wide oval.
func renderOval(o overlay.Oval) *canvas.Raster {
	bounds := o.Bounds
	raster := canvas.NewRasterWithPixels(func(x, y, w, h int) color.Color {
		if w <= 0 || h <= 0 {
			return color.Transparent
		}
		p := image.Pt(
			bounds.Min.X+x*bounds.Dx()/w,
			bounds.Min.Y+y*bounds.Dy()/h,
		)
		if o.Contains(p) {
			return o.Fill
		}
		return color.Transparent
	})
	raster.Move(toPos(bounds.Min))
	raster.Resize(toSize(bounds.Size()))
	return raster
}

func renderLabel(l overlay.Label) *canvas.Text {
	text := canvas.NewText(l.Text, l.Color)
	text.TextSize = theme.TextSize()
	if l.Small {
		text.TextSize = smallTextSize
		text.TextStyle = fyne.TextStyle{Monospace: true}
	}

	measured := fyne.MeasureText(l.Text, text.TextSize, text.TextStyle)
	pos := toPos(l.At)
	switch l.Anchor {
	case overlay.AnchorSouthWest:
		pos.Y -= measured.Height
	case overlay.AnchorWest:
		pos.Y -= measured.Height / 2
	}
	text.Move(pos)
	text.Resize(measured)
	return text
}

// fixedLayout keeps children where they were placed and reports a fixed size.
type fixedLayout struct {
	size fyne.Size
}

func (l *fixedLayout) Layout([]fyne.CanvasObject, fyne.Size) {}

func (l *fixedLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return l.size
}

func toPos(p image.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func toSize(p image.Point) fyne.Size {
	return fyne.NewSize(float32(p.X), float32(p.Y))
}
