// Package imaging loads relax images and shrinks them to fit a bounding box by
// power-of-two subsampling.
package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// ThumbnailSize bounds the preview shown in the main window.
const ThumbnailSize = 160

const maxHalvings = 30

// Halvings returns the smallest k such that size / 2^k <= limit.
func Halvings(size, limit int) int {
	if limit < 1 {
		limit = 1
	}
	k := 0
	for k < maxHalvings && size > limit<<k {
		k++
	}
	return k
}

// subsampled is the length left after keeping every 2^k-th pixel.
func subsampled(size, k int) int {
	return (size + (1 << k) - 1) >> k
}

// Fit shrinks img so that it fits in maxWidth x maxHeight, halving each axis
// independently. An image that already fits is returned as is. The two axes
// may end up with different factors, so the aspect ratio can change.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	return FitWith(draw.NearestNeighbor, img, maxWidth, maxHeight)
}

// FitWith is Fit with a caller-chosen scaler.
func FitWith(scaler draw.Scaler, img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	kx := Halvings(bounds.Dx(), maxWidth)
	ky := Halvings(bounds.Dy(), maxHeight)
	if kx == 0 && ky == 0 {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, subsampled(bounds.Dx(), kx), subsampled(bounds.Dy(), ky)))
	scaler.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}
