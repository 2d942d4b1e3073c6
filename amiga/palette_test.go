package amiga

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteIndex(t *testing.T) {
	p := EmptyPalette()
	require.NoError(t, p.Set(15, Color{8, 8, 8}))

	c, err := p.Index(15)
	require.NoError(t, err)
	assert.Equal(t, Color{8, 8, 8}, c)
	assert.Equal(t, Color{8, 8, 8}, p[15])

	_, err = p.Index(16)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = p.Index(-1)
	assert.ErrorIs(t, err, ErrIndex)

	assert.ErrorIs(t, p.Set(16, Color{}), ErrIndex)
	assert.ErrorIs(t, p.Set(0, Color{16, 0, 0}), ErrRange)
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*Palette)
		target Color
		want   int
	}{
		{
			name:   "exact",
			setup:  func(p *Palette) { p[5] = Color{7, 7, 7} },
			target: Color{7, 7, 7},
			want:   5,
		},
		{
			name:   "near",
			setup:  func(p *Palette) { p[15] = Color{14, 15, 14} },
			target: Color{15, 14, 15},
			want:   15,
		},
		{
			name: "first if same distance",
			setup: func(p *Palette) {
				p[4] = Color{15, 15, 15}
				p[8] = Color{13, 13, 13}
			},
			target: Color{14, 14, 14},
			want:   4,
		},
		{
			name: "distance one tie",
			setup: func(p *Palette) {
				p[4] = Color{6, 5, 5}
				p[8] = Color{5, 6, 5}
			},
			target: Color{5, 5, 5},
			want:   4,
		},
		{
			name:   "all black",
			setup:  func(p *Palette) {},
			target: Color{9, 9, 9},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := EmptyPalette()
			tt.setup(&p)
			assert.Equal(t, tt.want, p.Nearest(tt.target))
		})
	}
}

func TestNearestOutOfRangeEntry(t *testing.T) {
	p := EmptyPalette()
	p[3] = Color{R: 20, G: 4, B: 4} // shown as #444
	assert.Equal(t, 3, p.Nearest(Color{4, 4, 4}))
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, Color{0, 0, 0}, p[0])
	assert.Equal(t, Color{15, 15, 15}, p[15])
	for i, c := range p {
		assert.Equal(t, i, p.Nearest(c), "entry %d should be nearest to itself", i)
	}

	// Changing a copy must not change the preset
	p[0] = Color{1, 1, 1}
	assert.Equal(t, Color{0, 0, 0}, DefaultPalette()[0])
}

func TestColorPalette(t *testing.T) {
	p := DefaultPalette()
	cp := p.ColorPalette()
	require.Len(t, cp, PaletteSize)
	assert.Equal(t, 9, cp.Index(Color{15, 0, 0}))
	assert.Equal(t, "#000 #800", p.String()[:9])
}
