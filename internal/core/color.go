package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
)

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// palette holds the xterm default RGB value for every named Color.
// ColorDefault maps to light gray, the usual terminal foreground.
var palette = [...]RGB{
	ColorDefault:       {229, 233, 240},
	ColorRed:           {205, 0, 0},
	ColorGreen:         {0, 205, 0},
	ColorYellow:        {205, 205, 0},
	ColorBlue:          {0, 0, 238},
	ColorMagenta:       {205, 0, 205},
	ColorCyan:          {0, 205, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightRed:     {255, 0, 0},
	ColorBrightGreen:   {0, 255, 0},
	ColorBrightYellow:  {255, 255, 0},
	ColorBrightBlue:    {92, 92, 255},
	ColorBrightMagenta: {255, 0, 255},
	ColorBrightCyan:    {0, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
	ColorGray:          {138, 138, 138},
	ColorBlack:         {0, 0, 0},
}

// RGB returns the palette value of c.
func (c Color) RGB() RGB {
	if int(c) >= len(palette) {
		return palette[ColorDefault]
	}
	return palette[c]
}

// NearestColor maps an arbitrary RGB value onto the closest named Color.
// ColorDefault is never returned so textures keep an explicit color.
func NearestColor(r, g, b uint8) Color {
	best := ColorWhite
	bestDist := -1
	for i := 1; i < len(palette); i++ {
		p := palette[i]
		dr := int(r) - int(p.R)
		dg := int(g) - int(p.G)
		db := int(b) - int(p.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best = Color(i)
			bestDist = dist
		}
	}
	return best
}
