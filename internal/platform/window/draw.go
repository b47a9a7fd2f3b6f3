package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/course-arcade/internal/core"
)

const (
	textScale   = 3.0  // basicfont is tiny next to a 1920x1080 world
	lineHeight  = 45.0 // Distance between HUD lines, in world units
	hudMargin   = 24.0
	strokeWidth = 3.0
)

var (
	backgroundColor = color.RGBA{R: 16, G: 18, B: 26, A: 255}
	bannerFill      = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// palette maps terminal colors onto named web colors. Index by core.Color.
var palette = [...]color.RGBA{
	core.ColorDefault:       colornames.Lightgray,
	core.ColorRed:           colornames.Crimson,
	core.ColorGreen:         colornames.Limegreen,
	core.ColorYellow:        colornames.Gold,
	core.ColorBlue:          colornames.Royalblue,
	core.ColorMagenta:       colornames.Mediumorchid,
	core.ColorCyan:          colornames.Darkturquoise,
	core.ColorWhite:         colornames.Whitesmoke,
	core.ColorBrightRed:     colornames.Red,
	core.ColorBrightGreen:   colornames.Lime,
	core.ColorBrightYellow:  colornames.Yellow,
	core.ColorBrightBlue:    colornames.Dodgerblue,
	core.ColorBrightMagenta: colornames.Magenta,
	core.ColorBrightCyan:    colornames.Cyan,
	core.ColorBrightWhite:   colornames.White,
	core.ColorOrange:        colornames.Orange,
	core.ColorGray:          colornames.Gray,
	core.ColorBlack:         colornames.Black,
}

// colorOf returns the window color for a terminal color.
func colorOf(c core.Color) color.RGBA {
	if int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// backgroundOf keeps the default background dark instead of light gray.
func backgroundOf(c core.Color) color.RGBA {
	if c == core.ColorDefault {
		return backgroundColor
	}
	return colorOf(c)
}

// canvas owns the GPU-side resources reused across frames.
type canvas struct {
	face    text.Face
	white   *ebiten.Image
	sprites map[image.Image]*ebiten.Image
}

func newCanvas() *canvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	return &canvas{
		face:    text.NewGoXFace(basicfont.Face7x13),
		white:   white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		sprites: make(map[image.Image]*ebiten.Image),
	}
}

func (c *canvas) draw(dst *ebiten.Image, sc core.Scene, notice string) {
	dst.Fill(backgroundOf(sc.Background))

	for _, sh := range sc.Shapes {
		c.drawShape(dst, sh, sh.Box.Translate(sc.Offset))
	}

	for i, line := range sc.HUD {
		c.drawText(dst, line, hudMargin, hudMargin+float64(i)*lineHeight, colornames.White, text.AlignStart)
	}

	if notice != "" {
		c.drawText(dst, notice, hudMargin, sc.Height-hudMargin-lineHeight, colornames.Yellow, text.AlignStart)
	}

	if len(sc.Banner) > 0 {
		c.drawBanner(dst, sc)
	}
}

func (c *canvas) drawShape(dst *ebiten.Image, sh core.Shape, b core.Box) {
	clr := colorOf(sh.Color)
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)

	switch sh.Kind {
	case core.ShapeRect:
		if sh.Outline {
			vector.StrokeRect(dst, x, y, w, h, strokeWidth, clr, false)
		} else {
			vector.FillRect(dst, x, y, w, h, clr, false)
		}

	case core.ShapeCircle:
		r := min(w, h) / 2
		cx, cy := x+w/2, y+h/2
		if sh.Outline {
			vector.StrokeCircle(dst, cx, cy, r, strokeWidth, clr, true)
		} else {
			vector.FillCircle(dst, cx, cy, r, clr, true)
		}

	case core.ShapeTriangle:
		c.fillTriangle(dst, b, clr)

	case core.ShapeSprite:
		if sh.Image == nil {
			vector.FillRect(dst, x, y, w, h, clr, false)
			return
		}
		img := c.sprite(sh.Image)
		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(b.W/float64(bounds.Dx()), b.H/float64(bounds.Dy()))
		op.GeoM.Translate(b.X, b.Y)
		dst.DrawImage(img, op)
	}
}

// fillTriangle draws an upward triangle inscribed in b.
func (c *canvas) fillTriangle(dst *ebiten.Image, b core.Box, clr color.RGBA) {
	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	bl := float32(clr.B) / 0xff

	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: bl, ColorA: 1,
		}
	}

	vs := []ebiten.Vertex{
		vertex(b.X+b.W/2, b.Y),
		vertex(b.X, b.Bottom()),
		vertex(b.Right(), b.Bottom()),
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, c.white, op)
}

// sprite uploads an image once and reuses it afterwards.
func (c *canvas) sprite(src image.Image) *ebiten.Image {
	if img, ok := c.sprites[src]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	c.sprites[src] = img
	return img
}

func (c *canvas) drawText(dst *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, c.face, op)
}

// drawBanner draws the centered message box with one line per entry.
func (c *canvas) drawBanner(dst *ebiten.Image, sc core.Scene) {
	widest := 0.0
	for _, line := range sc.Banner {
		w, _ := text.Measure(line, c.face, 0)
		widest = max(widest, w*textScale)
	}

	boxW := widest + 2*hudMargin
	boxH := float64(len(sc.Banner))*lineHeight + 2*hudMargin
	boxX := (sc.Width - boxW) / 2
	boxY := (sc.Height - boxH) / 2

	vector.FillRect(dst, float32(boxX), float32(boxY), float32(boxW), float32(boxH), bannerFill, false)
	vector.StrokeRect(dst, float32(boxX), float32(boxY), float32(boxW), float32(boxH), strokeWidth, colornames.White, false)

	for i, line := range sc.Banner {
		y := boxY + hudMargin + float64(i)*lineHeight
		c.drawText(dst, line, sc.Width/2, y, colornames.White, text.AlignCenter)
	}
}
