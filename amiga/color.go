/*
Package amiga implements the 12-bit colour space used by the Amiga OCS/ECS
chipset and the 16 entry colour palette used by its HAM6 display mode.

Each colour channel is stored as a 4-bit value. Converting to 8 bits spreads
the 16 possible values evenly across the full 0-255 range so that both black
and full intensity can be represented; converting from 8 bits truncates the
lower nibble.
*/
package amiga

import (
	"errors"
	"fmt"
	"image/color"
)

// MaxChannel is the largest value a colour channel can hold
const MaxChannel = 0x0f

// ErrRange is returned when a channel value does not fit in 4 bits
var ErrRange = errors.New("amiga: channel out of range")

// Color is a 12-bit colour with 4 bits per channel. It implements the
// color.Color interface.
type Color struct {
	R, G, B uint8
}

// New returns a Color from three 4-bit channel values. Any bits above the
// lower nibble are discarded.
func New(r, g, b uint8) Color {
	return Color{r & MaxChannel, g & MaxChannel, b & MaxChannel}
}

// NewChecked is like New but returns ErrRange rather than masking values
// that do not fit in 4 bits.
func NewChecked(r, g, b uint8) (Color, error) {
	if r > MaxChannel || g > MaxChannel || b > MaxChannel {
		return Color{}, fmt.Errorf("%w: (%d, %d, %d)", ErrRange, r, g, b)
	}
	return Color{r, g, b}, nil
}

// FromRGB8 returns the Color nearest below the given 8-bit channels.
func FromRGB8(r, g, b uint8) Color {
	return Color{r >> 4, g >> 4, b >> 4}
}

func expand(v uint8) uint8 {
	return v<<4 + v
}

// RGB8 returns the colour as 8-bit channels.
func (c Color) RGB8() (r, g, b uint8) {
	return expand(c.R & MaxChannel), expand(c.G & MaxChannel), expand(c.B & MaxChannel)
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	// 0xf * 0x1111 = 0xffff
	r = uint32(c.R&MaxChannel) * 0x1111
	g = uint32(c.G&MaxChannel) * 0x1111
	b = uint32(c.B&MaxChannel) * 0x1111
	return r, g, b, 0xffff
}

// DistanceSq returns the squared euclidean distance between two colours,
// measured on the 4-bit scale. Only the lower 4 bits of each channel are
// used.
func (c Color) DistanceSq(o Color) float64 {
	rd := float64(c.R&MaxChannel) - float64(o.R&MaxChannel)
	gd := float64(c.G&MaxChannel) - float64(o.G&MaxChannel)
	bd := float64(c.B&MaxChannel) - float64(o.B&MaxChannel)
	return rd*rd + gd*gd + bd*bd
}

func (c Color) String() string {
	return fmt.Sprintf("#%X%X%X", c.R&MaxChannel, c.G&MaxChannel, c.B&MaxChannel)
}

// Quantize8 reduces an 8-bit channel value to 4 bits and expands it back
// again, returning the 8-bit value the Amiga would actually display.
func Quantize8(v uint8) uint8 {
	return expand(v >> 4)
}

func toColor(c color.Color) color.Color {
	if a, ok := c.(Color); ok {
		return a
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB8(n.R, n.G, n.B)
}

// Model converts any colour to a Color. Alpha is ignored.
var Model = color.ModelFunc(toColor)
