package hamster

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/bodgit/hamster/ham"
	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

func decode(b []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
}

// Prepare applies the resize and tonal adjustments followed by the dither
// filter.
func (c *Converter) Prepare(m image.Image) image.Image {
	if c.opts.resize() {
		m = imaging.Fit(m, c.opts.Width, c.opts.Height, imaging.Lanczos)
	}

	var filters []gift.Filter
	if c.opts.Contrast != 0 {
		filters = append(filters, gift.Contrast(c.opts.Contrast))
	}
	if c.opts.Saturation != 0 {
		filters = append(filters, gift.Saturation(c.opts.Saturation))
	}
	if c.opts.Gamma != 0 && c.opts.Gamma != 1 {
		filters = append(filters, gift.Gamma(c.opts.Gamma))
	}
	if len(filters) > 0 {
		g := gift.New(filters...)
		dst := image.NewNRGBA(g.Bounds(m.Bounds()))
		g.Draw(dst, m)
		m = dst
	}

	return c.filter(m)
}

// Encode prepares m and encodes it to HAM6.
func (c *Converter) Encode(m image.Image) *ham.Image {
	return ham.Encode(c.Prepare(m), c.hamOptions())
}

// Convert encodes the image held in b, using the cache if there is one.
func (c *Converter) Convert(b []byte) (*ham.Image, error) {
	var key string
	if c.db != nil {
		key = cacheKey(b, c.opts)
		m, err := c.db.Find(key)
		if err != nil {
			return nil, err
		}
		if m != nil {
			c.logger.Printf("Using cached conversion %s\n", key)
			return m, nil
		}
	}

	src, err := decode(b)
	if err != nil {
		return nil, err
	}

	m := c.Encode(src)

	if c.db != nil {
		if err := c.db.Store(key, m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ConvertFile converts the image in file in and writes the decoded HAM6
// result to file out. The format of out is chosen by its extension.
func (c *Converter) ConvertFile(in, out string) error {
	b, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	m, err := c.Convert(b)
	if err != nil {
		return err
	}

	rgba, err := m.Decode()
	if err != nil {
		return err
	}

	if err := Save(out, rgba); err != nil {
		return err
	}

	c.logger.Printf("Converted \"%s\" to \"%s\", %dx%d, %s\n", in, out, m.Width, m.Height, m.Stats())

	return nil
}

// DitherFile writes the prepared and dithered image in file in to file out
// without encoding it to HAM6.
func (c *Converter) DitherFile(in, out string) error {
	b, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	src, err := decode(b)
	if err != nil {
		return err
	}

	if err := Save(out, c.Prepare(src)); err != nil {
		return err
	}

	c.logger.Printf("Dithered \"%s\" to \"%s\" using %s\n", in, out, c.opts.dither())

	return nil
}
