// core/imagefilter/imagefilter.go
// Frequency-domain filtering of grayscale images: forward transform, mask
// multiply in the shifted Fourier plane, inverse transform. Images travel
// as gonum matrices with one row per pixel row, values on the 0–255 scale.
package imagefilter

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// Gray averages the color channels of img into a float matrix.
func Gray(img image.Image) *mat.Dense {
	b := img.Bounds()
	rows, cols := b.Dy(), b.Dx()
	m := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// Channels are 16-bit; 257 maps them back to the 0–255 scale.
			m.Set(y, x, float64(r+g+bl)/3.0/257.0)
		}
	}
	return m
}

// ToImage normalizes m to its maximum and renders 8-bit grayscale.
func ToImage(m *mat.Dense) *image.Gray {
	rows, cols := m.Dims()
	maxv := mat.Max(m)
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := m.At(y, x)
			if maxv > 0 {
				v = v / maxv * 255
			}
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v + 0.5)})
		}
	}
	return img
}
