package hamster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255,
			})
		}
	}
	return m
}

func writePNG(t *testing.T, file string, m image.Image) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(file), 0o755))
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, m))
}

func readImage(t *testing.T, file string) image.Image {
	t.Helper()

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()

	m, _, err := image.Decode(f)
	require.NoError(t, err)
	return m
}

func newTestConverter(t *testing.T, db *CacheDB, opts Options) *Converter {
	t.Helper()

	c, err := New(db, log.New(io.Discard, "", 0), opts)
	require.NoError(t, err)
	return c
}
