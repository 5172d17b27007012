package apitype

import "image"

// Size is a dimensionless width/height pair. Sizes used for scale
// computations must have both dimensions > 0, see IsValid.
type Size struct {
	width  float64
	height float64
}

func SizeOf(width float64, height float64) Size {
	return Size{width: width, height: height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  float64(rectangle.Dx()),
		height: float64(rectangle.Dy()),
	}
}

func ZeroSize() Size {
	return Size{}
}

func (s Size) Width() float64 {
	return s.width
}

func (s Size) Height() float64 {
	return s.height
}

func (s Size) IsValid() bool {
	return s.width > 0 && s.height > 0
}

// Scaled returns the size multiplied by a uniform scale factor.
func (s Size) Scaled(scale float64) Size {
	return Size{
		width:  s.width * scale,
		height: s.height * scale,
	}
}

// ScaleToFit returns the largest scale at which source, scaled uniformly,
// still fits inside target on both axes (aspect-preserving "contain" fit).
func ScaleToFit(source Size, target Size) float64 {
	widthScale := target.width / source.width
	heightScale := target.height / source.height

	if widthScale < heightScale {
		return widthScale
	}
	return heightScale
}
