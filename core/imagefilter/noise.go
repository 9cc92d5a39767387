// core/imagefilter/noise.go
package imagefilter

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
)

// SaltPepper corrupts a fraction r of pixels, half to black and half to
// full white, drawing from rng. r is clamped to 1.
func SaltPepper(img *mat.Dense, r float64, rng *rand.Rand) *mat.Dense {
	if r > 1 {
		r = 1
	}
	rows, cols := img.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			switch u := rng.Float64(); {
			case u < r/2:
				out.Set(i, j, 0)
			case u > 1-r/2:
				out.Set(i, j, 255)
			default:
				out.Set(i, j, img.At(i, j))
			}
		}
	}
	return out
}
