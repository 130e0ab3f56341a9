package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// iconFile is looked up relative to the working directory, next to a
// distribution's images folder.
var iconFile = filepath.Join("images", "breaktimer.png")

const iconSize = 64

var (
	iconBackground = color.NRGBA{R: 0x10, G: 0x14, B: 0x10, A: 0xff}
	iconDisc       = color.NRGBA{R: 60, G: 179, B: 113, A: 0xff}
	iconHand       = color.NRGBA{R: 250, G: 250, B: 210, A: 0xff}
)

// appIcon returns the shipped icon, or a generated one when none is installed.
func appIcon() fyne.Resource {
	if data, err := os.ReadFile(iconFile); err == nil {
		return fyne.NewStaticResource(filepath.Base(iconFile), data)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, drawIcon(iconSize)); err != nil {
		return nil
	}
	return fyne.NewStaticResource("breaktimer.png", buf.Bytes())
}

// drawIcon paints a clock face: a green disc with two hands.
func drawIcon(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	r := c - 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, iconDisc)
			} else {
				img.SetNRGBA(x, y, iconBackground)
			}
		}
	}

	mid := size / 2
	// minute hand pointing up, hour hand pointing right
	for y := size / 6; y <= mid; y++ {
		img.SetNRGBA(mid, y, iconHand)
		img.SetNRGBA(mid-1, y, iconHand)
	}
	for x := mid; x <= mid+size/4; x++ {
		img.SetNRGBA(x, mid, iconHand)
		img.SetNRGBA(x, mid-1, iconHand)
	}
	return img
}
