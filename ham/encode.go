package ham

import (
	"image"
	"image/color"

	"github.com/bodgit/hamster/amiga"
)

// Options alters the behaviour of Encode.
type Options struct {
	// Palette replaces the default palette
	Palette *amiga.Palette
	// ForcePaletteFirstColumn makes the first pixel of every row use
	// the palette regardless of whether a modify operation would be
	// closer
	ForcePaletteFirstColumn bool
}

type candidate struct {
	pixel    Pixel
	color    amiga.Color
	distance float64
}

type encoder struct {
	palette  *amiga.Palette
	previous amiga.Color
}

// next picks the cheapest way of approximating target given the colour of
// the previous pixel. Candidates are evaluated palette, red, green, blue and
// the first one with the smallest distance wins.
func (e *encoder) next(target amiga.Color, paletteOnly bool) Pixel {
	i := e.palette.Nearest(target)
	best := candidate{
		pixel:    Pixel{UsePalette, uint8(i)},
		color:    e.palette[i],
		distance: e.palette[i].DistanceSq(target),
	}

	if !paletteOnly {
		p := e.previous
		for _, c := range [...]candidate{
			{pixel: Pixel{ModifyRed, target.R}, color: amiga.Color{R: target.R, G: p.G, B: p.B}},
			{pixel: Pixel{ModifyGreen, target.G}, color: amiga.Color{R: p.R, G: target.G, B: p.B}},
			{pixel: Pixel{ModifyBlue, target.B}, color: amiga.Color{R: p.R, G: p.G, B: target.B}},
		} {
			c.distance = c.color.DistanceSq(target)
			if c.distance < best.distance {
				best = c
			}
		}
	}

	e.previous = best.color
	return best.pixel
}

func rgb8(c color.Color) (r, g, b uint8) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return n.R, n.G, n.B
}

// Encode converts m to HAM6. A nil o is the same as the zero Options, which
// encodes against the default palette.
func Encode(m image.Image, o *Options) *Image {
	if o == nil {
		o = &Options{}
	}

	b := m.Bounds()
	h := &Image{
		Width:   b.Dx(),
		Height:  b.Dy(),
		Pix:     make([]Pixel, 0, b.Dx()*b.Dy()),
		Palette: amiga.DefaultPalette(),
	}
	if o.Palette != nil {
		h.Palette = *o.Palette
	}

	e := encoder{palette: &h.Palette}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			target := amiga.FromRGB8(rgb8(m.At(x, y)))
			h.Pix = append(h.Pix, e.next(target, o.ForcePaletteFirstColumn && x == b.Min.X))
		}
	}

	return h
}
