package image1bit

import (
	"bytes"
	"image"
)

// Diff compares two frames of identical bounds and returns the minimal rectangle
// containing every changed pixel. The rectangle is widened to byte boundaries
// (multiples of 8 pixels relative to Rect.Min.X) and clipped to the image bounds.
// An empty rectangle means the frames are identical.
func Diff(prev, next *HorizontalMSB) image.Rectangle {
	if prev.Rect != next.Rect || prev.Stride != next.Stride {
		return next.Rect
	}

	height := next.Rect.Dy()
	stride := next.Stride

	minRow, maxRow := height, -1
	minByte, maxByte := stride, -1

	// Scan row by row to find differences
	for y := 0; y < height; y++ {
		rowStart := y * stride
		rowEnd := rowStart + stride

		if bytes.Equal(prev.Pix[rowStart:rowEnd], next.Pix[rowStart:rowEnd]) {
			continue
		}
		if y < minRow {
			minRow = y
		}
		if y > maxRow {
			maxRow = y
		}

		// Scan bytes within this row for precise boundaries
		for x := 0; x < stride; x++ {
			if prev.Pix[rowStart+x] != next.Pix[rowStart+x] {
				if x < minByte {
					minByte = x
				}
				if x > maxByte {
					maxByte = x
				}
			}
		}
	}

	if maxRow < 0 {
		return image.Rectangle{}
	}

	r := image.Rect(
		next.Rect.Min.X+minByte*8,
		next.Rect.Min.Y+minRow,
		next.Rect.Min.X+(maxByte+1)*8,
		next.Rect.Min.Y+maxRow+1,
	)
	return r.Intersect(next.Rect)
}
