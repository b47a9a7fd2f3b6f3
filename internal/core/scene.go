package core

import "image"

// ShapeKind selects how a Shape is drawn.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapeTriangle // Apex at top-center, base along the bottom edge
	ShapeSprite   // Image stretched over the box
)

// Shape is one drawable primitive in world coordinates.
type Shape struct {
	Kind    ShapeKind
	Box     Box
	Color   Color
	Outline bool        // Draw only the border (rects and circles)
	Rune    rune        // Terminal glyph; zero picks a default for the kind
	Image   image.Image // Texture for ShapeSprite
}

// FillRect returns a filled rectangle shape.
func FillRect(b Box, c Color) Shape {
	return Shape{Kind: ShapeRect, Box: b, Color: c}
}

// StrokeRect returns a rectangle outline shape.
func StrokeRect(b Box, c Color) Shape {
	return Shape{Kind: ShapeRect, Box: b, Color: c, Outline: true}
}

// Circle returns a filled circle (ellipse) inscribed in b.
func Circle(b Box, c Color) Shape {
	return Shape{Kind: ShapeCircle, Box: b, Color: c}
}

// Triangle returns an upward-pointing filled triangle inscribed in b.
func Triangle(b Box, c Color) Shape {
	return Shape{Kind: ShapeTriangle, Box: b, Color: c}
}

// Sprite returns a textured shape stretched over b.
func Sprite(b Box, img image.Image) Shape {
	return Shape{Kind: ShapeSprite, Box: b, Image: img, Color: ColorWhite}
}

// Scene is everything a game wants drawn for one frame, independent of the
// output device. The terminal and window platforms both consume it.
type Scene struct {
	Width, Height float64 // World size the shapes are laid out in
	Offset        Vec2    // Camera offset applied to every shape (screen shake)
	Background    Color
	Shapes        []Shape  // Painted in order
	HUD           []string // Status lines drawn top-left over the world
	Banner        []string // Centered message box (pause, win, loss); empty for none
}

// NewScene creates an empty scene of the given world size.
func NewScene(w, h float64) Scene {
	return Scene{Width: w, Height: h}
}

// Add appends shapes to the scene.
func (s *Scene) Add(shapes ...Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}
