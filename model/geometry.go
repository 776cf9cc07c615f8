package model

// Point represents a 2D point in image pixel coordinates
type Point struct {
	X, Y float64
}

// BBox represents a bounding box (rectangle).
// The origin is the top-left corner of the image, Y grows downward.
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge
func (b BBox) Left() float64 { return b.X }

// Right returns the right edge
func (b BBox) Right() float64 { return b.X + b.Width }

// Top returns the top edge
func (b BBox) Top() float64 { return b.Y }

// Bottom returns the bottom edge
func (b BBox) Bottom() float64 { return b.Y + b.Height }

// Center returns the center point of the box
func (b BBox) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Contains reports whether the point lies inside the box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.X+b.Width &&
		p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Intersects reports whether two boxes overlap
func (b BBox) Intersects(other BBox) bool {
	return b.X < other.Right() && b.Right() > other.X &&
		b.Y < other.Bottom() && b.Bottom() > other.Y
}

// IsEmpty reports whether the box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
