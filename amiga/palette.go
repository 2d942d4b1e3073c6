package amiga

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// PaletteSize is the number of colour registers available to HAM6
const PaletteSize = 16

// ErrIndex is returned when a palette index is outside 0-15
var ErrIndex = errors.New("amiga: palette index out of range")

// Palette is the fixed table of 16 colour registers.
type Palette [PaletteSize]Color

// DefaultPalette returns the preset palette: black, the half intensity
// primaries and secondaries, two greys and the full intensity set.
func DefaultPalette() Palette {
	return Palette{
		{0, 0, 0},
		{8, 0, 0},
		{0, 8, 0},
		{8, 8, 0},
		{0, 0, 8},
		{8, 0, 8},
		{0, 8, 8},
		{12, 12, 12},
		{8, 8, 8},
		{15, 0, 0},
		{0, 15, 0},
		{15, 15, 0},
		{0, 0, 15},
		{15, 0, 15},
		{0, 15, 15},
		{15, 15, 15},
	}
}

// EmptyPalette returns a palette with every register set to black.
func EmptyPalette() Palette {
	return Palette{}
}

func checkIndex(i int) error {
	if i < 0 || i >= PaletteSize {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	return nil
}

// Index returns the colour stored at index i.
func (p *Palette) Index(i int) (Color, error) {
	if err := checkIndex(i); err != nil {
		return Color{}, err
	}
	return p[i], nil
}

// Set overwrites the colour stored at index i.
func (p *Palette) Set(i int, c Color) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	if _, err := NewChecked(c.R, c.G, c.B); err != nil {
		return err
	}
	p[i] = c
	return nil
}

// Nearest returns the index of the palette entry closest to target. When
// more than one entry is equally close the lowest index is returned.
func (p *Palette) Nearest(target Color) int {
	index := 0
	best := p[0].DistanceSq(target)
	for i := 1; i < PaletteSize; i++ {
		if d := p[i].DistanceSq(target); d < best {
			best, index = d, i
		}
	}
	return index
}

// ColorPalette returns the palette as a color.Palette.
func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, PaletteSize)
	for i, c := range p {
		cp[i] = c
	}
	return cp
}

func (p *Palette) String() string {
	s := make([]string, PaletteSize)
	for i, c := range p {
		s[i] = c.String()
	}
	return strings.Join(s, " ")
}
