package dither

import (
	"image"

	"github.com/bodgit/hamster/amiga"
)

// Naive carries the quantization error of each pixel forward onto the next
// pixel only. Every pixel in the result is reduced to 4 bits per channel.
func Naive(m image.Image) *image.RGBA {
	dst := rgba(m)

	var last [3]int
	for i := 0; i < len(dst.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			original := int(dst.Pix[i+c])
			q := amiga.Quantize8(clamp(original + last[c]))
			last[c] = original - int(q)
			dst.Pix[i+c] = q
		}
	}

	return dst
}
