// core/imagefilter/filter.go
package imagefilter

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Mode selects which side of the circular mask passes.
type Mode int

const (
	// Lowpass keeps modes inside the radius around the centered zero mode.
	Lowpass Mode = iota
	// Highpass keeps the modes outside it.
	Highpass
)

// Mask returns the circular pass mask for a shifted rows×cols spectrum:
// 1 where the mode passes, 0 where it is removed. The circle is centered
// at (rows/2, cols/2).
func Mask(rows, cols int, radius float64, mode Mode) *mat.Dense {
	m := mat.NewDense(rows, cols, nil)
	cr, cc := float64(rows)/2, float64(cols)/2
	r2 := radius * radius
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			di, dj := float64(i)-cr, float64(j)-cc
			inside := di*di+dj*dj <= r2
			if inside == (mode == Lowpass) {
				m.Set(i, j, 1)
			}
		}
	}
	return m
}

// Filter applies the circular frequency-domain mask to img: forward
// transform, shift the zero mode to the center, multiply by the mask,
// unshift, inverse transform, and return the magnitude image.
func Filter(img *mat.Dense, radius float64, mode Mode) *mat.Dense {
	rows, cols := img.Dims()
	data := make([]complex128, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data[r*cols+c] = complex(img.At(r, c), 0)
		}
	}

	fft2(data, rows, cols, false)
	data = fftShift(data, rows, cols)

	mask := Mask(rows, cols, radius, mode)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if mask.At(r, c) == 0 {
				data[r*cols+c] = 0
			}
		}
	}

	data = ifftShift(data, rows, cols)
	fft2(data, rows, cols, true)

	out := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Set(r, c, cmplx.Abs(data[r*cols+c]))
		}
	}
	return out
}
