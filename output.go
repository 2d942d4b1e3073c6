package hamster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrFormat is returned when the output file extension isn't recognised
var ErrFormat = errors.New("hamster: unsupported output format")

const gifColors = 256

func encodeGIF(w io.Writer, m image.Image) error {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, gifColors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return gif.Encode(w, pm, nil)
}

func encoderFor(ext string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return png.Encode, nil
	case "gif":
		return encodeGIF, nil
	case "bmp":
		return bmp.Encode, nil
	case "tif", "tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, nil)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
}

// Encode writes m to w in the format named by ext, which is one of png,
// gif, bmp or tiff. GIF output is reduced to 256 colours.
func Encode(w io.Writer, m image.Image, ext string) error {
	enc, err := encoderFor(ext)
	if err != nil {
		return err
	}
	return enc(w, m)
}

// Save writes m to file using the format implied by its extension.
func Save(file string, m image.Image) (err error) {
	enc, err := encoderFor(filepath.Ext(file))
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return enc(f, m)
}
