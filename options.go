package hamster

import (
	"fmt"
	"runtime"
	"strings"
)

const defaultFormat = "png"

// Options controls how images are prepared and encoded.
type Options struct {
	// Dither names the dither filter, see dither.Lookup. Empty means none
	Dither string
	// ForcePaletteFirstColumn makes the first pixel of each row use the
	// palette
	ForcePaletteFirstColumn bool

	// Width and Height, if both non-zero, resize the image to fit
	// within the box keeping the aspect ratio
	Width, Height int

	// Contrast and Saturation are percentages, zero is no change
	Contrast, Saturation float32
	// Gamma of zero or one is no change
	Gamma float32

	// Format is the output file extension used when scanning a
	// directory, without the leading dot
	Format string
	// Workers is the number of images converted concurrently when
	// scanning a directory, zero means one per CPU
	Workers int
}

func (o Options) dither() string {
	if o.Dither == "" {
		return "none"
	}
	return o.Dither
}

func (o Options) format() string {
	if o.Format == "" {
		return defaultFormat
	}
	return strings.TrimPrefix(strings.ToLower(o.Format), ".")
}

func (o Options) workers() int {
	if o.Workers < 1 {
		return runtime.NumCPU()
	}
	return o.Workers
}

func (o Options) resize() bool {
	return o.Width > 0 && o.Height > 0
}

// fingerprint covers every option that changes the encoded result
func (o Options) fingerprint() string {
	return fmt.Sprintf("%s|%t|%dx%d|%g|%g|%g",
		strings.ToLower(o.dither()), o.ForcePaletteFirstColumn,
		o.Width, o.Height,
		o.Contrast, o.Saturation, o.Gamma)
}
