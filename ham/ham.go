/*
Package ham implements an encoder and decoder for the Amiga Hold-And-Modify
HAM6 display mode.

Each HAM6 pixel is six bits; a 2-bit operation and a 4-bit payload. The
operation either selects one of the 16 palette registers or holds two
channels of the previous pixel's colour and replaces the third with the
payload. Decoding is therefore sequential; every pixel depends on the colour
of the one before it in row-major order, starting from black at the top-left
of each image.

Pixels are kept one per Pixel value; no attempt is made to pack them into
Amiga bitplanes.
*/
package ham

import (
	"errors"
	"fmt"
	"math"

	"github.com/bodgit/hamster/amiga"
)

var (
	// ErrDimensions is returned when the pixel data doesn't match the
	// width and height of the image
	ErrDimensions = errors.New("ham: pixel count does not match dimensions")
	// ErrPayload is returned when a payload doesn't fit in 4 bits
	ErrPayload = errors.New("ham: payload out of range")
	// ErrOp is returned for an operation other than the four HAM6 ones
	ErrOp = errors.New("ham: invalid operation")
)

// Op is the 2-bit HAM6 control value.
type Op uint8

// The four HAM6 operations, in the order the encoder evaluates them.
const (
	UsePalette Op = iota
	ModifyRed
	ModifyGreen
	ModifyBlue
	numOps
)

func (op Op) String() string {
	switch op {
	case UsePalette:
		return "palette"
	case ModifyRed:
		return "red"
	case ModifyGreen:
		return "green"
	case ModifyBlue:
		return "blue"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Pixel is a single HAM6 pixel. For UsePalette the payload is the palette
// index, otherwise it is the new 4-bit value of the modified channel.
type Pixel struct {
	Op      Op
	Payload uint8
}

// NewPixel returns a Pixel after checking that both the operation and
// payload are in range.
func NewPixel(op Op, payload uint8) (Pixel, error) {
	p := Pixel{op, payload}
	if err := p.check(); err != nil {
		return Pixel{}, err
	}
	return p, nil
}

func (p Pixel) check() error {
	if p.Op >= numOps {
		return fmt.Errorf("%w: %d", ErrOp, uint8(p.Op))
	}
	if p.Payload > amiga.MaxChannel {
		return fmt.Errorf("%w: %d", ErrPayload, p.Payload)
	}
	return nil
}

// Image is a HAM6 encoded image. Pix holds Width*Height pixels in row-major
// order and Palette is the copy of the colour registers used to encode it.
type Image struct {
	Width, Height int
	Pix           []Pixel
	Palette       amiga.Palette
}

// Validate checks that the pixel data is consistent with the dimensions of
// the image and that every pixel is valid.
func (m *Image) Validate() error {
	if m.Width < 0 || m.Height < 0 ||
		(m.Height != 0 && m.Width > math.MaxInt/m.Height) ||
		len(m.Pix) != m.Width*m.Height {
		return fmt.Errorf("%w: %dx%d with %d pixels", ErrDimensions, m.Width, m.Height, len(m.Pix))
	}
	for i, p := range m.Pix {
		if err := p.check(); err != nil {
			return fmt.Errorf("pixel %d: %w", i, err)
		}
	}
	return nil
}

// Stats counts how often each operation was used.
type Stats [numOps]int

// Stats returns the number of pixels using each operation.
func (m *Image) Stats() Stats {
	var s Stats
	for _, p := range m.Pix {
		if p.Op < numOps {
			s[p.Op]++
		}
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("palette=%d red=%d green=%d blue=%d", s[UsePalette], s[ModifyRed], s[ModifyGreen], s[ModifyBlue])
}
