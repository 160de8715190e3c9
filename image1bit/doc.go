// Package image1bit provides a 1-bit monochrome image format for small OLED and LCD panels.
//
// Pixels are stored in horizontal MSB-first packing where each byte contains 8 pixels,
// the same layout used by the GFXcanvas1 family of microcontroller canvases.
//
// Memory layout example for a 10-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7 | 8 9
//	Values: 1 0 1 1 0 0 0 1 | 1 1
//	Bytes:  0xB1            | 0xC0
//	        (the second byte is padded with zero bits)
//
// This package provides:
//
// - Bit: A color type representing a set (On) or cleared (Off) pixel
// - BitModel: A color model converting standard Go colors to Bit by luminance threshold
// - HorizontalMSB: A draw.Image implementation backed by the packed buffer
// - Diff: The minimal byte-aligned rectangle that changed between two frames
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, 128, 64))
//
//	// Set a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
