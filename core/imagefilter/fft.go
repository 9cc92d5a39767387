// core/imagefilter/fft.go
package imagefilter

import "gonum.org/v1/gonum/dsp/fourier"

// fft2 transforms row-major rows×cols data in place: a pass over the rows
// followed by a pass over the columns. The inverse divides by rows·cols at
// the end (fourier.CmplxFFT's Sequence is unnormalized).
func fft2(data []complex128, rows, cols int, inverse bool) {
	rowFFT := fourier.NewCmplxFFT(cols)
	row := make([]complex128, cols)
	for r := 0; r < rows; r++ {
		copy(row, data[r*cols:(r+1)*cols])
		if inverse {
			rowFFT.Sequence(data[r*cols:(r+1)*cols], row)
		} else {
			rowFFT.Coefficients(data[r*cols:(r+1)*cols], row)
		}
	}

	colFFT := fourier.NewCmplxFFT(rows)
	col := make([]complex128, rows)
	out := make([]complex128, rows)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			col[r] = data[r*cols+c]
		}
		if inverse {
			colFFT.Sequence(out, col)
		} else {
			colFFT.Coefficients(out, col)
		}
		for r := 0; r < rows; r++ {
			data[r*cols+c] = out[r]
		}
	}

	if inverse {
		scale := complex(1/float64(rows*cols), 0)
		for i := range data {
			data[i] *= scale
		}
	}
}

// cyclicShift rotates data down by dr rows and right by dc columns.
func cyclicShift(data []complex128, rows, cols, dr, dc int) []complex128 {
	out := make([]complex128, len(data))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[((r+dr)%rows)*cols+(c+dc)%cols] = data[r*cols+c]
		}
	}
	return out
}

// fftShift moves the zero-frequency mode to the center of the plane.
func fftShift(data []complex128, rows, cols int) []complex128 {
	return cyclicShift(data, rows, cols, rows/2, cols/2)
}

// ifftShift undoes fftShift; the two differ for odd dimensions.
func ifftShift(data []complex128, rows, cols int) []complex128 {
	return cyclicShift(data, rows, cols, rows-rows/2, cols-cols/2)
}
