package apitype

import "fmt"

type Point struct {
	x float64
	y float64
}

func PointOf(x float64, y float64) Point {
	return Point{x: x, y: y}
}

func (s Point) X() float64 {
	return s.x
}

func (s Point) Y() float64 {
	return s.y
}

type Rect struct {
	x      float64
	y      float64
	width  float64
	height float64
}

func RectOf(x float64, y float64, width float64, height float64) Rect {
	return Rect{x: x, y: y, width: width, height: height}
}

func (s Rect) X() float64 {
	return s.x
}

func (s Rect) Y() float64 {
	return s.y
}

func (s Rect) Width() float64 {
	return s.width
}

func (s Rect) Height() float64 {
	return s.height
}

func (s Rect) Size() Size {
	return Size{width: s.width, height: s.height}
}

func (s Rect) String() string {
	return fmt.Sprintf("Rect{%.2f, %.2f, %.2f x %.2f}", s.x, s.y, s.width, s.height)
}

// Insets are symmetric by construction: content centering always pads both
// sides of an axis equally and never by a negative amount.
type Insets struct {
	top    float64
	left   float64
	bottom float64
	right  float64
}

func InsetsOf(vertical float64, horizontal float64) Insets {
	return Insets{
		top:    vertical,
		left:   horizontal,
		bottom: vertical,
		right:  horizontal,
	}
}

func (s Insets) Top() float64 {
	return s.top
}

func (s Insets) Left() float64 {
	return s.left
}

func (s Insets) Bottom() float64 {
	return s.bottom
}

func (s Insets) Right() float64 {
	return s.right
}

// CenterInsets returns the insets that center content of the given size
// inside the viewport. Content larger than the viewport gets zero insets.
func CenterInsets(viewport Size, content Size) Insets {
	horizontal := (viewport.width - content.width) / 2
	if horizontal < 0 {
		horizontal = 0
	}
	vertical := (viewport.height - content.height) / 2
	if vertical < 0 {
		vertical = 0
	}
	return InsetsOf(vertical, horizontal)
}
