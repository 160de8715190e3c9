package widget

import (
	"fmt"
	"image"

	"github.com/flavioheleno/monocanvas/image1bit"
	"github.com/skip2/go-qrcode"
)

// SymbolType selects an icon from the built-in set.
type SymbolType uint16

// Built-in 8×8 icons.
const (
	SymbolArrowUp SymbolType = iota
	SymbolArrowDown
	SymbolArrowLeft
	SymbolArrowRight
	SymbolCheck
	SymbolCross
	SymbolDegree
	SymbolBatteryEmpty
	SymbolBatteryFull
	SymbolWifi
	SymbolWarning
)

// SymbolSize is the width and height of every icon.
const SymbolSize = 8

// icons holds one byte per column, bit 0 being the top row.
var icons = map[SymbolType][SymbolSize]byte{
	SymbolArrowUp:      {0x00, 0x04, 0x02, 0xFF, 0x02, 0x04, 0x00, 0x00},
	SymbolArrowDown:    {0x00, 0x20, 0x40, 0xFF, 0x40, 0x20, 0x00, 0x00},
	SymbolArrowLeft:    {0x00, 0x08, 0x1C, 0x3E, 0x7F, 0x1C, 0x08, 0x00},
	SymbolArrowRight:   {0x00, 0x08, 0x1C, 0x7F, 0x3E, 0x1C, 0x08, 0x00},
	SymbolCheck:        {0x00, 0x60, 0x30, 0x18, 0x0C, 0x06, 0x03, 0x00},
	SymbolCross:        {0x00, 0x63, 0x36, 0x1C, 0x1C, 0x36, 0x63, 0x00},
	SymbolDegree:       {0x00, 0x06, 0x09, 0x09, 0x06, 0x00, 0x00, 0x00},
	SymbolBatteryEmpty: {0x7E, 0x42, 0x42, 0x42, 0x42, 0x7E, 0x18, 0x00},
	SymbolBatteryFull:  {0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x7E, 0x18, 0x00},
	SymbolWifi:         {0x04, 0x02, 0x09, 0x65, 0x65, 0x09, 0x02, 0x04},
	SymbolWarning:      {0xC0, 0xB0, 0x8C, 0xD3, 0xD3, 0x8C, 0xB0, 0xC0},
}

var symbolNames = map[SymbolType]string{
	SymbolArrowUp:      "arrow-up",
	SymbolArrowDown:    "arrow-down",
	SymbolArrowLeft:    "arrow-left",
	SymbolArrowRight:   "arrow-right",
	SymbolCheck:        "check",
	SymbolCross:        "cross",
	SymbolDegree:       "degree",
	SymbolBatteryEmpty: "battery-empty",
	SymbolBatteryFull:  "battery-full",
	SymbolWifi:         "wifi",
	SymbolWarning:      "warning",
}

func (s SymbolType) String() string {
	if name, ok := symbolNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SymbolType(%d)", uint16(s))
}

// ParseSymbol returns the symbol with the given name, as printed by String.
func ParseSymbol(name string) (SymbolType, error) {
	for s, n := range symbolNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("widget: symbol %q: %w", name, ErrUnknownSymbol)
}

// Symbol draws icon s with its top-left corner at (x, y). Only set pixels
// are drawn.
func Symbol(c Canvas, s SymbolType, x, y int) error {
	icon, ok := icons[s]
	if !ok {
		return fmt.Errorf("widget: %v: %w", s, ErrUnknownSymbol)
	}
	for col, bits := range icon {
		for row := 0; row < SymbolSize; row++ {
			if bits&(1<<row) != 0 {
				c.DrawPixel(x+col, y+row, image1bit.On)
			}
		}
	}
	return nil
}

// QRCode draws payload as a QR code with its top-left corner at (x, y), one
// pixel per module, and returns the area it covers.
//
// Dark modules are drawn Off on an On background, quiet zone included, so
// the code reads as dark-on-light on an OLED.
func QRCode(c Canvas, payload string, x, y int) (image.Rectangle, error) {
	q, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("widget: qr code: %w", err)
	}
	bitmap := q.Bitmap()
	size := len(bitmap)
	for row, modules := range bitmap {
		for col, dark := range modules {
			c.DrawPixel(x+col, y+row, image1bit.Bit(!dark))
		}
	}
	return image.Rect(x, y, x+size, y+size), nil
}
