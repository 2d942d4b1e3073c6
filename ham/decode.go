package ham

import (
	"image"

	"github.com/bodgit/hamster/amiga"
)

// Decode reconstructs the image using its own palette.
func (m *Image) Decode() (*image.RGBA, error) {
	return m.DecodeWith(&m.Palette)
}

// DecodeWith reconstructs the image using the given palette instead of the
// one it was encoded with. Only pixels using the palette are affected
// directly; modified pixels inherit the change through the held channels.
func (m *Image) DecodeWith(p *amiga.Palette) (*image.RGBA, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	out := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))

	var previous amiga.Color
	for i, px := range m.Pix {
		c := previous
		switch px.Op {
		case UsePalette:
			c = p[px.Payload]
		case ModifyRed:
			c.R = px.Payload
		case ModifyGreen:
			c.G = px.Payload
		case ModifyBlue:
			c.B = px.Payload
		}
		previous = c

		// Rect starts at the origin so Stride is exactly 4*Width
		s := out.Pix[i*4 : i*4+4 : i*4+4]
		s[0], s[1], s[2] = c.RGB8()
		s[3] = 0xff
	}

	return out, nil
}
