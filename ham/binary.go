package ham

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/hamster/amiga"
)

const (
	magic   = "HAM6"
	version = 1

	// magic, version, width, height, palette
	headerSize = len(magic) + 1 + 4 + 4 + amiga.PaletteSize*3
)

// ErrFormat is returned when unmarshalling data that wasn't produced by
// MarshalBinary
var ErrFormat = errors.New("ham: invalid binary data")

// MarshalBinary implements encoding.BinaryMarshaler. The result is a short
// header including the palette followed by one byte per pixel with the
// operation in the upper nibble and the payload in the lower nibble.
func (m *Image) MarshalBinary() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	b := new(bytes.Buffer)
	b.Grow(headerSize + len(m.Pix))

	b.WriteString(magic)
	b.WriteByte(version)

	dims := [2]uint32{uint32(m.Width), uint32(m.Height)}
	if err := binary.Write(b, binary.LittleEndian, &dims); err != nil {
		return nil, err
	}

	for _, c := range m.Palette {
		b.Write([]byte{c.R, c.G, c.B})
	}

	for _, p := range m.Pix {
		b.WriteByte(byte(p.Op)<<4 | p.Payload)
	}

	return b.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (m *Image) UnmarshalBinary(b []byte) error {
	if len(b) < headerSize || string(b[:len(magic)]) != magic {
		return ErrFormat
	}
	if v := b[len(magic)]; v != version {
		return fmt.Errorf("%w: unsupported version %d", ErrFormat, v)
	}

	r := bytes.NewReader(b[len(magic)+1:])

	var dims [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
		return err
	}
	width, height := int(dims[0]), int(dims[1])

	var palette amiga.Palette
	var tmp [3]byte
	for i := range palette {
		if _, err := io.ReadFull(r, tmp[:]); err != nil {
			return err
		}
		c, err := amiga.NewChecked(tmp[0], tmp[1], tmp[2])
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFormat, err)
		}
		palette[i] = c
	}

	rest := b[headerSize:]
	if uint64(len(rest)) != uint64(dims[0])*uint64(dims[1]) {
		return fmt.Errorf("%w: %dx%d with %d pixels", ErrDimensions, width, height, len(rest))
	}

	pix := make([]Pixel, len(rest))
	for i, v := range rest {
		p, err := NewPixel(Op(v>>4), v&0x0f)
		if err != nil {
			return fmt.Errorf("pixel %d: %w", i, err)
		}
		pix[i] = p
	}

	m.Width, m.Height = width, height
	m.Pix = pix
	m.Palette = palette

	return nil
}
