// Package overlay describes what the break view draws, independently of the
// toolkit that renders it.
package overlay

import (
	"image"
	"image/color"
	"math/rand"
	"strconv"

	"breaktimer/imaging"
)

const (
	Width  = 640
	Height = 480

	gridStep    = 40
	inset       = 60
	shapeCount  = 9
	messageText = "Relax for a bit or two..."
	hintText    = "ESC to exit..."
)

// Anchor says which point of a label its position refers to.
type Anchor int

const (
	AnchorSouthWest Anchor = iota
	AnchorWest
)

// Line is a one pixel line.
type Line struct {
	From, To image.Point
	Color    color.NRGBA
}

// Label is a piece of text. Small labels use the fine grid font.
type Label struct {
	Text   string
	At     image.Point
	Anchor Anchor
	Color  color.NRGBA
	Small  bool
}

// Oval is a filled ellipse inscribed in Bounds, drawn without outline.
type Oval struct {
	Bounds image.Rectangle
	Fill   color.NRGBA
}

// Contains reports whether the pixel at p lies inside the ellipse. A pixel
// counts when its centre does.
func (o Oval) Contains(p image.Point) bool {
	w, h := o.Bounds.Dx(), o.Bounds.Dy()
	if w <= 0 || h <= 0 || !p.In(o.Bounds) {
		return false
	}
	dx := (2*float64(p.X-o.Bounds.Min.X)+1)/float64(w) - 1
	dy := (2*float64(p.Y-o.Bounds.Min.Y)+1)/float64(h) - 1
	return dx*dx+dy*dy <= 1
}

// Scene is everything the overlay window shows.
type Scene struct {
	Size       image.Point
	Background color.NRGBA
	Image      image.Image // nil for the placeholder
	Lines      []Line
	Ovals      []Oval
	Labels     []Label
}

// Placeholder reports whether the scene is the generated pattern.
func (s Scene) Placeholder() bool {
	return s.Image == nil
}

var (
	black    = color.NRGBA{A: 0xff}
	white    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	green    = color.NRGBA{G: 0xff, A: 0xff}
	gridLine = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	gridText = color.NRGBA{R: 0x4d, G: 0x4d, B: 0x4d, A: 0xff}
)

// Palette holds the colours the placeholder shapes are drawn from.
var Palette = []color.NRGBA{
	{R: 143, G: 188, B: 143, A: 255}, // dark sea green
	{R: 46, G: 139, B: 87, A: 255},   // sea green
	{R: 60, G: 179, B: 113, A: 255},  // medium sea green
	{R: 32, G: 178, B: 170, A: 255},  // light sea green
	{R: 152, G: 251, B: 152, A: 255}, // pale green
	{R: 0, G: 255, B: 127, A: 255},   // spring green
	{R: 124, G: 252, B: 0, A: 255},   // lawn green
	{R: 0, G: 250, B: 154, A: 255},   // medium spring green
	{R: 173, G: 255, B: 47, A: 255},  // green yellow
	{R: 50, G: 205, B: 50, A: 255},   // lime green
	{R: 154, G: 205, B: 50, A: 255},  // yellow green
	{R: 34, G: 139, B: 34, A: 255},   // forest green
	{R: 107, G: 142, B: 35, A: 255},  // olive drab
	{R: 189, G: 183, B: 107, A: 255}, // dark khaki
	{R: 240, G: 230, B: 140, A: 255}, // khaki
	{R: 238, G: 232, B: 170, A: 255}, // pale goldenrod
	{R: 250, G: 250, B: 210, A: 255}, // light goldenrod yellow
}

// Compose builds the scene for img, or the placeholder when img is nil.
func Compose(img image.Image, rng *rand.Rand) Scene {
	scene := Scene{
		Size:       image.Pt(Width, Height),
		Background: black,
	}

	if img != nil {
		scene.Image = imaging.Fit(img, Width, Height)
		scene.Size = scene.Image.Bounds().Size()
	} else {
		addGrid(&scene)
		addOvals(&scene, rng)
		scene.Labels = append(scene.Labels, Label{
			Text:   messageText,
			At:     image.Pt(inset, 80),
			Anchor: AnchorWest,
			Color:  white,
		})
	}

	scene.Labels = append(scene.Labels, Label{
		Text:   hintText,
		At:     image.Pt(scene.Size.X-80, scene.Size.Y-20),
		Anchor: AnchorSouthWest,
		Color:  green,
		Small:  true,
	})
	return scene
}

// Prepare loads path and composes its scene. An empty path gives the
// placeholder silently; an unusable one gives the placeholder plus the decode
// error for the status bar.
func Prepare(path string, rng *rand.Rand) (Scene, error) {
	if path == "" {
		return Compose(nil, rng), nil
	}
	img, err := imaging.Load(path)
	if err != nil {
		return Compose(nil, rng), err
	}
	return Compose(img, rng), nil
}

func addGrid(scene *Scene) {
	for i := 0; i < Width; i += gridStep {
		label := strconv.Itoa(i)
		scene.Lines = append(scene.Lines,
			Line{From: image.Pt(0, i), To: image.Pt(Width, i), Color: gridLine},
			Line{From: image.Pt(i, 0), To: image.Pt(i, Height), Color: gridLine},
		)
		scene.Labels = append(scene.Labels,
			Label{Text: label, At: image.Pt(2, i), Anchor: AnchorSouthWest, Color: gridText, Small: true},
			Label{Text: label, At: image.Pt(i+2, 12), Anchor: AnchorSouthWest, Color: gridText, Small: true},
		)
	}
}

func addOvals(scene *Scene, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	between := func(lo, hi int) int {
		return lo + rng.Intn(hi-lo+1)
	}
	for i := 0; i < shapeCount; i++ {
		x1, y1 := between(inset, Width-inset), between(inset, Height-inset)
		x2, y2 := between(inset, Width-inset), between(inset, Height-inset)
		scene.Ovals = append(scene.Ovals, Oval{
			Bounds: image.Rect(x1, y1, x2, y2), // Rect canonicalizes the corners
			Fill:   Palette[rng.Intn(len(Palette))],
		})
	}
}
