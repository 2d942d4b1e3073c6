package dither

import "image"

type weight struct {
	dx, dy, w int
}

// kernel describes an error diffusion matrix along with the margins of the
// image that are not processed so that every weight stays in bounds
type kernel struct {
	weights                  []weight
	divisor                  int
	left, right, top, bottom int
}

/*
	    X   7
	3   5   1

	  (1/16)
*/
var floydSteinberg = kernel{
	weights: []weight{
		{1, 0, 7},
		{-1, 1, 3}, {0, 1, 5}, {1, 1, 1},
	},
	divisor: 16,
	left:    1,
	right:   2,
	top:     1,
	bottom:  2,
}

/*
	            X   7   5
	3   5   7   5   3
	1   3   5   3   1

	      (1/48)
*/
var jarvisJudiceNinke = kernel{
	weights: []weight{
		{1, 0, 7}, {2, 0, 5},
		{-3, 1, 3}, {-2, 1, 5}, {-1, 1, 7}, {0, 1, 5}, {1, 1, 3},
		{-3, 2, 1}, {-2, 2, 3}, {-1, 2, 5}, {0, 2, 3}, {1, 2, 1},
	},
	divisor: 48,
	left:    3,
	right:   3,
	top:     0,
	bottom:  3,
}

func (k *kernel) diffuse(dst *image.RGBA) {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()

	for y := k.top; y < h-k.bottom; y++ {
		for x := k.left; x < w-k.right; x++ {
			i := dst.PixOffset(x, y)
			e := quantizationError(dst.Pix[i : i+3])

			for c := 0; c < 3; c++ {
				dst.Pix[i+c] = clamp(int(dst.Pix[i+c]) + e[c])
			}

			for _, n := range k.weights {
				j := dst.PixOffset(x+n.dx, y+n.dy)
				for c := 0; c < 3; c++ {
					dst.Pix[j+c] = clamp(int(dst.Pix[j+c]) + e[c]*n.w/k.divisor)
				}
			}
		}
	}
}

// FloydSteinberg diffuses the quantization error onto four neighbours. Pixels
// are processed from (1, 1) up to and including (width-3, height-3).
func FloydSteinberg(m image.Image) *image.RGBA {
	dst := rgba(m)
	floydSteinberg.diffuse(dst)
	return dst
}

// JarvisJudiceNinke diffuses the quantization error onto twelve neighbours
// over the following two rows. Pixels are processed from (3, 0) up to and
// including (width-4, height-4).
func JarvisJudiceNinke(m image.Image) *image.RGBA {
	dst := rgba(m)
	jarvisJudiceNinke.diffuse(dst)
	return dst
}
