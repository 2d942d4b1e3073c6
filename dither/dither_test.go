package dither

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(w, h int, v uint8) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = v
	}
	return m
}

func random(r *rand.Rand, w, h int) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	r.Read(m.Pix)
	for i := 3; i < len(m.Pix); i += 4 {
		m.Pix[i] = 0xff
	}
	return m
}

func gray(v uint8) color.RGBA {
	return color.RGBA{v, v, v, 0xff}
}

// grid returns the red channel of every pixel
func grid(m *image.RGBA) [][]uint8 {
	b := m.Bounds()
	g := make([][]uint8, b.Dy())
	for y := range g {
		g[y] = make([]uint8, b.Dx())
		for x := range g[y] {
			g[y][x] = m.RGBAAt(x, y).R
		}
	}
	return g
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, f, name)
	}

	_, err := Lookup("FS")
	assert.NoError(t, err)

	_, err = Lookup("atkinson")
	assert.ErrorIs(t, err, ErrUnknown)

	assert.Contains(t, Names(), "jjn")
}

func TestNone(t *testing.T) {
	m := random(rand.New(rand.NewSource(1)), 5, 3)
	assert.Equal(t, m.Pix, None(m).Pix)
}

func TestTranslucentInput(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	m.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 128})

	for _, f := range []Func{None, FloydSteinberg, JarvisJudiceNinke} {
		assert.Equal(t, color.RGBA{200, 100, 50, 0xff}, f(m).RGBAAt(0, 0))
	}
	assert.Equal(t, color.RGBA{204, 102, 51, 0xff}, Naive(m).RGBAAt(0, 0))
}

func TestNaive(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 3, 1))
	m.SetRGBA(0, 0, gray(20))
	m.SetRGBA(1, 0, gray(30))
	m.SetRGBA(2, 0, gray(16))

	out := Naive(m)
	assert.Equal(t, [][]uint8{{17, 34, 0}}, grid(out))
}

func TestNaiveQuantizes(t *testing.T) {
	out := Naive(random(rand.New(rand.NewSource(2)), 16, 16))
	for i, v := range out.Pix {
		if i%4 == 3 {
			assert.Equal(t, uint8(0xff), v)
			continue
		}
		assert.Zero(t, v%17, "offset %d", i)
	}
}

func TestFloydSteinbergSinglePixel(t *testing.T) {
	// Only (1, 1) is processed in a 4x4 image; an error of 15 on every
	// channel diffuses 6, 2, 4 and 0 onto the neighbours
	out := FloydSteinberg(uniform(4, 4, 15))
	assert.Equal(t, [][]uint8{
		{15, 15, 15, 15},
		{15, 30, 21, 15},
		{17, 19, 15, 15},
		{15, 15, 15, 15},
	}, grid(out))
}

func TestJarvisJudiceNinkeSinglePixel(t *testing.T) {
	// Only (3, 0) is processed in a 7x4 image
	out := JarvisJudiceNinke(uniform(7, 4, 15))
	assert.Equal(t, [][]uint8{
		{15, 15, 15, 30, 17, 16, 15},
		{15, 16, 17, 16, 15, 15, 15},
		{15, 15, 16, 15, 15, 15, 15},
		{15, 15, 15, 15, 15, 15, 15},
	}, grid(out))
}

func TestFloydSteinbergClamps(t *testing.T) {
	m := uniform(4, 4, 0)
	m.SetRGBA(1, 1, gray(15))
	m.SetRGBA(2, 1, gray(253))
	assert.Equal(t, uint8(255), FloydSteinberg(m).RGBAAt(2, 1).R)

	m = uniform(4, 4, 0)
	m.SetRGBA(1, 1, gray(240))
	m.SetRGBA(2, 1, gray(3))
	out := FloydSteinberg(m)
	assert.Equal(t, uint8(225), out.RGBAAt(1, 1).R)
	assert.Equal(t, uint8(0), out.RGBAAt(2, 1).R)
}

func TestJarvisJudiceNinkeClamps(t *testing.T) {
	m := uniform(7, 4, 0)
	m.SetRGBA(3, 0, gray(15))
	m.SetRGBA(4, 0, gray(254))
	assert.Equal(t, uint8(255), JarvisJudiceNinke(m).RGBAAt(4, 0).R)

	m = uniform(7, 4, 0)
	m.SetRGBA(3, 0, gray(240))
	m.SetRGBA(4, 0, gray(1))
	assert.Equal(t, uint8(0), JarvisJudiceNinke(m).RGBAAt(4, 0).R)
}

func TestMargins(t *testing.T) {
	tests := []struct {
		name string
		f    Func
		// untouched reports whether (x, y) is outside the footprint of
		// the filter for a w by h image
		untouched func(x, y, w, h int) bool
	}{
		{
			name: "floyd-steinberg",
			f:    FloydSteinberg,
			untouched: func(x, y, w, h int) bool {
				return y == 0 || y == h-1 || x == w-1
			},
		},
		{
			name: "jarvis-judice-ninke",
			f:    JarvisJudiceNinke,
			untouched: func(x, y, w, h int) bool {
				return y == h-1 || x == w-1
			},
		},
	}

	r := rand.New(rand.NewSource(3))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, size := range []image.Point{{8, 8}, {23, 11}, {64, 5}} {
				m := random(r, size.X, size.Y)
				out := tt.f(m)
				require.Equal(t, m.Bounds(), out.Bounds())
				for y := 0; y < size.Y; y++ {
					for x := 0; x < size.X; x++ {
						if tt.untouched(x, y, size.X, size.Y) {
							assert.Equal(t, m.RGBAAt(x, y), out.RGBAAt(x, y), "(%d, %d)", x, y)
						}
					}
				}
			}
		})
	}
}

func TestSmallImages(t *testing.T) {
	// Too small for any pixel to be processed
	for _, f := range []Func{FloydSteinberg, JarvisJudiceNinke} {
		for _, size := range []image.Point{{0, 0}, {1, 1}, {3, 3}, {6, 3}} {
			m := random(rand.New(rand.NewSource(4)), size.X, size.Y)
			assert.Equal(t, m.Pix, f(m).Pix)
		}
	}
	assert.Len(t, Naive(image.NewRGBA(image.Rect(0, 0, 0, 0))).Pix, 0)
}

func TestInputUnchanged(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, name := range []string{"naive", "fs", "jjn"} {
		f, err := Lookup(name)
		require.NoError(t, err)

		m := random(r, 16, 16)
		orig := append([]uint8(nil), m.Pix...)
		f(m)
		assert.Equal(t, orig, m.Pix, name)
	}
}

func TestOffsetOrigin(t *testing.T) {
	m := random(rand.New(rand.NewSource(6)), 10, 10)
	sub := m.SubImage(image.Rect(2, 2, 8, 8))
	out := FloydSteinberg(sub)
	assert.Equal(t, image.Rect(0, 0, 6, 6), out.Bounds())
	assert.Equal(t, m.RGBAAt(2, 2), out.RGBAAt(0, 0))
}
