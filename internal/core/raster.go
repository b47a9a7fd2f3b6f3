package core

import "math"

// Default glyphs for rasterized shapes.
const (
	FillGlyph    = '█'
	OutlineGlyph = '░'
)

// Rasterize draws a scene into a character screen. The world is stretched
// over the whole screen; each cell takes the color of the last shape
// covering its center. Shapes too small to cover any cell center still
// mark the cells they touch so nothing vanishes at low resolution.
func Rasterize(dst *Screen, sc Scene) {
	dst.Clear()

	if sc.Width > 0 && sc.Height > 0 && dst.Width() > 0 && dst.Height() > 0 {
		sx := float64(dst.Width()) / sc.Width
		sy := float64(dst.Height()) / sc.Height
		for _, sh := range sc.Shapes {
			sh.Box = sh.Box.Translate(sc.Offset)
			rasterShape(dst, sh, sx, sy)
		}
	}

	for i, line := range sc.HUD {
		dst.DrawTextColored(1, i, line, ColorBrightWhite)
	}

	if len(sc.Banner) > 0 {
		dst.DrawMessageBox(sc.Banner...)
	}
}

// rasterShape paints one shape at scale (sx, sy) cells per world unit.
func rasterShape(dst *Screen, sh Shape, sx, sy float64) {
	b := sh.Box
	if b.W <= 0 || b.H <= 0 {
		return
	}

	x0 := Clamp(int(math.Floor(b.X*sx)), 0, dst.Width())
	x1 := Clamp(int(math.Ceil(b.Right()*sx)), 0, dst.Width())
	y0 := Clamp(int(math.Floor(b.Y*sy)), 0, dst.Height())
	y1 := Clamp(int(math.Ceil(b.Bottom()*sy)), 0, dst.Height())

	cellW, cellH := 1/sx, 1/sy
	painted := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			p := Vec2{X: (float64(cx) + 0.5) * cellW, Y: (float64(cy) + 0.5) * cellH}
			r, c, ok := sample(sh, p, cellW, cellH)
			if ok {
				dst.SetColored(cx, cy, r, c)
				painted = true
			}
		}
	}

	if painted || sh.Outline {
		return
	}

	// Thinner than a cell on some axis: mark every touched cell so a flat
	// paddle keeps its width and a dot-sized ball still shows.
	glyph := smallGlyph(sh)
	if x1-x0 > 1 || y1-y0 > 1 {
		glyph = FillGlyph
		if sh.Rune != 0 {
			glyph = sh.Rune
		}
	}
	c := shapeColor(sh, b.Center())
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			dst.SetColored(cx, cy, glyph, c)
		}
	}
}

// sample reports the glyph and color of shape sh at world point p.
func sample(sh Shape, p Vec2, cellW, cellH float64) (rune, Color, bool) {
	b := sh.Box
	if !b.Contains(p) {
		return 0, 0, false
	}

	glyph := sh.Rune
	if glyph == 0 {
		glyph = FillGlyph
		if sh.Outline {
			glyph = OutlineGlyph
		}
	}

	switch sh.Kind {
	case ShapeRect:
		if sh.Outline && !nearEdge(b, p, cellW, cellH) {
			return 0, 0, false
		}
		return glyph, sh.Color, true

	case ShapeCircle:
		if !inEllipse(b, p) {
			return 0, 0, false
		}
		if sh.Outline {
			inner := b.Centered(b.W-2*cellW, b.H-2*cellH)
			if inner.W > 0 && inner.H > 0 && inEllipse(inner, p) {
				return 0, 0, false
			}
		}
		return glyph, sh.Color, true

	case ShapeTriangle:
		// Half-width grows linearly from 0 at the apex to W/2 at the base
		half := (p.Y - b.Y) / b.H * b.W / 2
		if math.Abs(p.X-b.Center().X) > half {
			return 0, 0, false
		}
		return glyph, sh.Color, true

	case ShapeSprite:
		c, ok := texel(sh, p)
		if !ok {
			return 0, 0, false
		}
		return glyph, c, true
	}

	return 0, 0, false
}

func nearEdge(b Box, p Vec2, cellW, cellH float64) bool {
	return p.X-b.X < cellW || b.Right()-p.X < cellW ||
		p.Y-b.Y < cellH || b.Bottom()-p.Y < cellH
}

func inEllipse(b Box, p Vec2) bool {
	c := b.Center()
	rx, ry := b.W/2, b.H/2
	dx := (p.X - c.X) / rx
	dy := (p.Y - c.Y) / ry
	return dx*dx+dy*dy <= 1
}

// texel samples a sprite image at world point p; transparent texels miss.
func texel(sh Shape, p Vec2) (Color, bool) {
	if sh.Image == nil {
		return sh.Color, true
	}
	bounds := sh.Image.Bounds()
	if bounds.Empty() {
		return 0, false
	}

	u := (p.X - sh.Box.X) / sh.Box.W
	v := (p.Y - sh.Box.Y) / sh.Box.H
	px := bounds.Min.X + Clamp(int(u*float64(bounds.Dx())), 0, bounds.Dx()-1)
	py := bounds.Min.Y + Clamp(int(v*float64(bounds.Dy())), 0, bounds.Dy()-1)

	r, g, bl, a := sh.Image.At(px, py).RGBA()
	if a < 0x8000 {
		return 0, false
	}
	return NearestColor(uint8(r>>8), uint8(g>>8), uint8(bl>>8)), true
}

func smallGlyph(sh Shape) rune {
	if sh.Rune != 0 {
		return sh.Rune
	}
	switch sh.Kind {
	case ShapeCircle:
		return '●'
	case ShapeTriangle:
		return '▲'
	default:
		return '■'
	}
}

func shapeColor(sh Shape, p Vec2) Color {
	if sh.Kind == ShapeSprite {
		if c, ok := texel(sh, p); ok {
			return c
		}
	}
	return sh.Color
}
