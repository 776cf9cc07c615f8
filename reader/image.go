package reader

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/tsawler/folio/format"
	"github.com/tsawler/folio/model"
)

// LoadImage decodes the page's image file and records the pixel dimensions
// on the page. The format is detected from the file content, not the
// extension, so misnamed scans still decode.
func LoadImage(p *model.Page) (image.Image, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page image: %w", err)
	}
	defer f.Close()

	detected, err := format.DetectFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to sniff image format: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to rewind image file: %w", err)
	}

	var img image.Image
	switch detected {
	case format.PNG:
		img, err = png.Decode(f)
	case format.JPEG:
		img, err = jpeg.Decode(f)
	case format.TIFF:
		img, err = tiff.Decode(f)
	case format.BMP:
		img, err = bmp.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported image format in %s", p.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p.Name, err)
	}

	bounds := img.Bounds()
	p.Width = bounds.Dx()
	p.Height = bounds.Dy()
	return img, nil
}
