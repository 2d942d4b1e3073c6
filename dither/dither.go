/*
Package dither implements error diffusion filters that prepare a truecolor
image for quantization to the 12-bit Amiga colour space.

Every filter copies the source into a new opaque *image.RGBA and then walks
it in raster order, modifying pixels as it goes so that later pixels see the
error already diffused onto them. All writes are clamped to 0-255.

The kernel based filters only process pixels where the whole kernel fits
inside the image. Pixels outside that area are only changed if the kernel of
a processed pixel reaches them; the remaining border is passed through
untouched.
*/
package dither

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/bodgit/hamster/amiga"
)

// ErrUnknown is returned by Lookup for an unrecognised filter name
var ErrUnknown = errors.New("dither: unknown filter")

// Func is the signature shared by every filter in this package.
type Func func(image.Image) *image.RGBA

var filters = map[string]Func{
	"none":                None,
	"naive":               Naive,
	"floyd-steinberg":     FloydSteinberg,
	"fs":                  FloydSteinberg,
	"jarvis-judice-ninke": JarvisJudiceNinke,
	"jjn":                 JarvisJudiceNinke,
}

// Lookup returns the filter with the given name.
func Lookup(name string) (Func, error) {
	if f, ok := filters[strings.ToLower(name)]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Names returns the recognised filter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(filters))
	for n := range filters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	default:
		return uint8(v)
	}
}

// rgba returns an opaque copy of m with its top-left corner at (0, 0). The
// colour channels are taken without premultiplying by alpha, so alpha is
// simply dropped.
func rgba(m image.Image) *image.RGBA {
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{n.R, n.G, n.B, 0xff})
		}
	}
	return dst
}

// None returns an unmodified copy of m.
func None(m image.Image) *image.RGBA {
	return rgba(m)
}

// quantizationError returns the difference between each channel of pix and
// the value it would have once reduced to 4 bits
func quantizationError(pix []uint8) (e [3]int) {
	for c := range e {
		e[c] = int(pix[c]) - int(amiga.Quantize8(pix[c]))
	}
	return
}
