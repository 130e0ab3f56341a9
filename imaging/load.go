package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"

	// Decoders offered in the image chooser.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNoImage is returned by Load for an empty path.
var ErrNoImage = errors.New("no image configured")

// DecodeError reports an image that is missing or in an unsupported format.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("image format not supported: %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Formats lists the formats Load understands, for the about dialog.
func Formats() string {
	return "PNG, GIF, JPEG, BMP, WebP"
}

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, &DecodeError{Path: path, Err: ErrNoImage}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// Thumbnail loads path and fits it into the main window preview box.
func Thumbnail(path string) (image.Image, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Fit(img, ThumbnailSize, ThumbnailSize), nil
}
