package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusKind selects the colours of the status bar.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusActive
	StatusError
)

var statusColors = map[StatusKind][2]color.Color{
	StatusInfo:   {color.Transparent, color.Gray{Y: 0x60}},
	StatusActive: {color.NRGBA{R: 0xdf, G: 0xf5, B: 0xe3, A: 0xff}, color.NRGBA{R: 0x1e, G: 0x6b, B: 0x34, A: 0xff}},
	StatusError:  {color.NRGBA{R: 0xfd, G: 0xe2, B: 0xe1, A: 0xff}, color.NRGBA{R: 0xa4, G: 0x1e, B: 0x1e, A: 0xff}},
}

// StatusLabel is the one-line status bar at the bottom of the main window
type StatusLabel struct {
	widget.BaseWidget
	text    string
	kind    StatusKind
	textObj *canvas.Text
	bgRect  *canvas.Rectangle
}

// NewStatusLabel creates a status bar showing text
func NewStatusLabel(text string) *StatusLabel {
	sl := &StatusLabel{text: text, kind: StatusInfo}
	sl.ExtendBaseWidget(sl)
	return sl
}

// CreateRenderer implements fyne.Widget
func (sl *StatusLabel) CreateRenderer() fyne.WidgetRenderer {
	colors := statusColors[sl.kind]
	sl.textObj = canvas.NewText(sl.text, colors[1])
	sl.textObj.Alignment = fyne.TextAlignLeading
	sl.bgRect = canvas.NewRectangle(colors[0])

	return &statusLabelRenderer{
		label:     sl,
		container: container.NewStack(sl.bgRect, container.NewPadded(sl.textObj)),
	}
}

// Text returns the current status message
func (sl *StatusLabel) Text() string {
	return sl.text
}

// Kind returns the current status kind
func (sl *StatusLabel) Kind() StatusKind {
	return sl.kind
}

// SetStatus updates the message and its colours
func (sl *StatusLabel) SetStatus(text string, kind StatusKind) {
	sl.text = text
	sl.kind = kind
	sl.Refresh()
}

type statusLabelRenderer struct {
	label     *StatusLabel
	container *fyne.Container
}

func (r *statusLabelRenderer) MinSize() fyne.Size {
	return r.container.MinSize()
}

func (r *statusLabelRenderer) Layout(size fyne.Size) {
	r.container.Resize(size)
}

func (r *statusLabelRenderer) Refresh() {
	colors := statusColors[r.label.kind]
	r.label.textObj.Text = r.label.text
	r.label.textObj.Color = colors[1]
	r.label.bgRect.FillColor = colors[0]
	r.label.textObj.Refresh()
	r.label.bgRect.Refresh()
}

func (r *statusLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.container}
}

func (r *statusLabelRenderer) Destroy() {}
