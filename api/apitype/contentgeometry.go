package apitype

import "fmt"

// ContentGeometry is what the host applies to its viewport widget after a
// geometry or zoom event: the scaled content size, the centering insets and
// the current scale bounds.
type ContentGeometry struct {
	contentSize  Size
	insets       Insets
	minScale     float64
	maxScale     float64
	currentScale float64
}

func ContentGeometryOf(contentSize Size, insets Insets, minScale float64, maxScale float64, currentScale float64) ContentGeometry {
	return ContentGeometry{
		contentSize:  contentSize,
		insets:       insets,
		minScale:     minScale,
		maxScale:     maxScale,
		currentScale: currentScale,
	}
}

func (s ContentGeometry) ContentSize() Size {
	return s.contentSize
}

func (s ContentGeometry) Insets() Insets {
	return s.insets
}

func (s ContentGeometry) MinScale() float64 {
	return s.minScale
}

func (s ContentGeometry) MaxScale() float64 {
	return s.maxScale
}

func (s ContentGeometry) CurrentScale() float64 {
	return s.currentScale
}

func (s ContentGeometry) String() string {
	return fmt.Sprintf("ContentGeometry{%.2f x %.2f @ %.3f [%.3f, %.3f]}",
		s.contentSize.width, s.contentSize.height, s.currentScale, s.minScale, s.maxScale)
}

type ZoomActionType int

const (
	// NoAction means the gesture has no effect in the current state.
	NoAction ZoomActionType = iota
	// ZoomToRect asks the host widget to zoom so the rect fills the viewport.
	ZoomToRect
	// SetScale asks the host widget to move to an absolute zoom scale.
	SetScale
)

// ZoomAction is a command for the host's zoom widget. The controller never
// animates anything itself; Animated is a hint for the widget.
type ZoomAction struct {
	actionType ZoomActionType
	rect       Rect
	scale      float64
	animated   bool
}

func NoZoomAction() ZoomAction {
	return ZoomAction{actionType: NoAction}
}

func ZoomToRectAction(rect Rect, animated bool) ZoomAction {
	return ZoomAction{actionType: ZoomToRect, rect: rect, animated: animated}
}

func SetScaleAction(scale float64, animated bool) ZoomAction {
	return ZoomAction{actionType: SetScale, scale: scale, animated: animated}
}

func (s ZoomAction) Type() ZoomActionType {
	return s.actionType
}

func (s ZoomAction) Rect() Rect {
	return s.rect
}

func (s ZoomAction) Scale() float64 {
	return s.scale
}

func (s ZoomAction) Animated() bool {
	return s.animated
}
