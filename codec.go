package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "github.com/go-forks/gopnm"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoder turns an image path into an RGBA8 raster
type Decoder interface {
	Decode(p ImagePath) (*image.RGBA, error)
}

// DecodeError is the cached failure for one image
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// fileDecoder decodes plain files and archive entries with the registered
// image codecs
type fileDecoder struct{}

func (fileDecoder) Decode(p ImagePath) (*image.RGBA, error) {
	if p.IsArchiveEntry() {
		data, err := readArchiveEntry(p)
		if err != nil {
			return nil, err
		}
		return decodeRGBA(bytes.NewReader(data))
	}

	f, err := os.Open(p.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeRGBA(f)
}

func decodeRGBA(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return toRGBA(img), nil
}

// toRGBA returns img as a zero-origin RGBA raster, converting when needed
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
