package core

import "image/color"

// Color represents a foreground color for a screen cell or a fill color on a canvas.
// Terminal front-ends map it to ANSI 256-color codes, the desktop front-end to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
	ColorNavy  // Sky, upper band
	ColorTeal  // Sky, lower band
	ColorSlate // Ground strip
	ColorSteel // Ground texture
)

// palette holds straight (non-premultiplied) RGBA values for pixel canvases.
var palette = map[Color]color.NRGBA{
	ColorDefault:       {R: 255, G: 255, B: 255, A: 255},
	ColorRed:           {R: 231, G: 76, B: 60, A: 255},
	ColorGreen:         {R: 46, G: 204, B: 113, A: 255},
	ColorYellow:        {R: 255, G: 215, B: 0, A: 255},
	ColorBlue:          {R: 52, G: 152, B: 219, A: 255},
	ColorMagenta:       {R: 155, G: 89, B: 182, A: 255},
	ColorCyan:          {R: 26, G: 188, B: 156, A: 255},
	ColorWhite:         {R: 200, G: 200, B: 200, A: 255},
	ColorBrightRed:     {R: 255, G: 71, B: 87, A: 255},
	ColorBrightGreen:   {R: 123, G: 237, B: 159, A: 255},
	ColorBrightYellow:  {R: 255, G: 236, B: 120, A: 255},
	ColorBrightBlue:    {R: 112, G: 161, B: 255, A: 255},
	ColorBrightMagenta: {R: 236, G: 130, B: 255, A: 255},
	ColorBrightCyan:    {R: 180, G: 235, B: 255, A: 255},
	ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:        {R: 243, G: 156, B: 18, A: 255},
	ColorGray:          {R: 255, G: 255, B: 255, A: 13}, // Grid lines, 5% white
	ColorBlack:         {R: 0, G: 0, B: 0, A: 220},
	ColorNavy:          {R: 26, G: 26, B: 46, A: 255},
	ColorTeal:          {R: 22, G: 33, B: 62, A: 255},
	ColorSlate:         {R: 45, G: 74, B: 34, A: 255},
	ColorSteel:         {R: 34, G: 56, B: 26, A: 255},
}

// NRGBA returns the color for pixel canvases. Unknown colors map to ColorDefault.
func (c Color) NRGBA() color.NRGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[ColorDefault]
}
