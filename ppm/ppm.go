// Package ppm encodes images in the plain (P3) PPM text format.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
)

// Encoder adapts Encode to the collaborator interface the core expects.
type Encoder struct{}

func (Encoder) Encode(w io.Writer, img *image.RGBA) error {
	return Encode(w, img)
}

// Encode writes img as plain PPM: a "P3" magic line, the dimensions, the
// maximum channel value 255, then one line of width space-separated
// "r g b" triples per pixel row, top row first.
func Encode(w io.Writer, img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return fmt.Errorf("image must have positive dimensions, got %dx%d", b.Dx(), b.Dy())
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if x > b.Min.X {
				bw.WriteByte(' ')
			}
			c := img.RGBAAt(x, y)
			bw.WriteString(strconv.Itoa(int(c.R)))
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(int(c.G)))
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(int(c.B)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
