package viewport

import (
	"errors"
	"math"

	"vincit.fi/image-magnifier/api/apitype"
	"vincit.fi/image-magnifier/common"
)

const (
	// Floor for the computed fit scale. A very large image in a very small
	// viewport must not drive the scale to a degenerate near-zero value.
	minScaleFloor = 0.1

	// Tolerance for the shared "at rest" predicate. Used both for the
	// re-fit-on-layout decision and for the double tap toggle so the two
	// cannot drift apart.
	restEpsilon = 0.01
)

var (
	// ErrViewportNotReady signals a zero-sized viewport during early layout.
	// Not an error condition: the host retries after its next layout pass.
	ErrViewportNotReady = errors.New("viewport has no size yet")
	// ErrInvalidImage signals an image without positive intrinsic size.
	// Recoverable only by supplying a valid image.
	ErrInvalidImage = errors.New("image has no size")
)

// Controller keeps the zoom/pan fit state for one displayed image: viewport
// size, image size, scale bounds and the current scale. The host feeds it
// geometry and gesture events and applies the returned content geometry and
// zoom actions to its own scrollable widget. The controller never animates.
type Controller struct {
	viewportSize apitype.Size
	imageSize    apitype.Size
	minScale     float64
	maxScale     float64
	currentScale float64
	initialScale float64

	doubleTapZoomFactor float64

	fitted bool
}

func NewController(params *common.Params) *Controller {
	return newController(
		params.MinZoomScale(),
		params.MaxZoomScale(),
		params.InitialZoomScale(),
		params.DoubleTapZoomFactor())
}

func newController(minScale float64, maxScale float64, initialScale float64, doubleTapZoomFactor float64) *Controller {
	if minScale <= 0 {
		minScale = common.DefaultMinZoomScale
	}
	if maxScale <= 0 {
		maxScale = common.DefaultMaxZoomScale
	}
	if initialScale <= 0 {
		initialScale = common.DefaultInitialZoomScale
	}
	if doubleTapZoomFactor <= 1 {
		doubleTapZoomFactor = common.DefaultDoubleTapZoomFactor
	}
	return &Controller{
		minScale:            minScale,
		maxScale:            maxScale,
		currentScale:        initialScale,
		initialScale:        initialScale,
		doubleTapZoomFactor: doubleTapZoomFactor,
	}
}

// Reset discards all fit state. Called when a new image is attached; the fit
// scale is then recomputed from scratch on the next geometry pass.
func (s *Controller) Reset() {
	s.viewportSize = apitype.ZeroSize()
	s.imageSize = apitype.ZeroSize()
	s.currentScale = s.initialScale
	s.fitted = false
}

// OnGeometryChanged recomputes the fit scale for the given viewport and image
// sizes. The current scale is re-homed to the new fit scale when this is the
// first computation or when the previous scale was at rest; a user's manual
// zoom survives layout churn. Returns ErrViewportNotReady or ErrInvalidImage
// without touching state when either size is not usable yet.
func (s *Controller) OnGeometryChanged(viewportSize apitype.Size, imageSize apitype.Size) (apitype.ContentGeometry, error) {
	if !viewportSize.IsValid() {
		return apitype.ContentGeometry{}, ErrViewportNotReady
	}
	if !imageSize.IsValid() {
		return apitype.ContentGeometry{}, ErrInvalidImage
	}

	minScale := math.Max(apitype.ScaleToFit(imageSize, viewportSize), minScaleFloor)
	atRest := !s.fitted || isAtRest(s.currentScale, s.minScale)

	s.viewportSize = viewportSize
	s.imageSize = imageSize
	s.minScale = minScale
	if atRest {
		s.currentScale = minScale
	} else {
		s.currentScale = s.clampScale(s.currentScale)
	}
	s.fitted = true

	return s.ContentGeometry(), nil
}

// OnZoomChanged applies a continuous zoom gesture update. Out-of-bounds
// values are silently clamped; gestures naturally overshoot.
func (s *Controller) OnZoomChanged(newScale float64) apitype.ContentGeometry {
	s.currentScale = s.clampScale(newScale)
	return s.ContentGeometry()
}

// ZoomBy steps the current scale by a delta, clamped like OnZoomChanged.
func (s *Controller) ZoomBy(delta float64) apitype.ContentGeometry {
	return s.OnZoomChanged(s.currentScale + delta)
}

// OnDoubleTap toggles between fitted and magnified. At rest the result is a
// zoom rectangle centered on the tap point, sized to magnify by the double
// tap zoom factor; the rect may extend outside the content and the host's
// zoom-to-rect call is expected to clamp it. When zoomed, the result resets
// to the fit scale.
func (s *Controller) OnDoubleTap(tapPoint apitype.Point, viewportBounds apitype.Rect) apitype.ZoomAction {
	if !isAtRest(s.currentScale, s.minScale) {
		return apitype.SetScaleAction(s.minScale, true)
	}

	width := viewportBounds.Width() / s.doubleTapZoomFactor
	height := viewportBounds.Height() / s.doubleTapZoomFactor
	rect := apitype.RectOf(
		tapPoint.X()-width/2,
		tapPoint.Y()-height/2,
		width,
		height)
	return apitype.ZoomToRectAction(rect, true)
}

// OnSingleTap resets to the fit scale when zoomed, otherwise does nothing.
// The host gesture layer only delivers a single tap when no double tap was
// recognized within the multi-tap window.
func (s *Controller) OnSingleTap() apitype.ZoomAction {
	if s.currentScale-s.minScale > restEpsilon {
		return apitype.SetScaleAction(s.minScale, true)
	}
	return apitype.NoZoomAction()
}

// ContentGeometry returns the geometry for the current state: scaled content
// size and symmetric centering insets.
func (s *Controller) ContentGeometry() apitype.ContentGeometry {
	contentSize := s.imageSize.Scaled(s.currentScale)
	insets := apitype.CenterInsets(s.viewportSize, contentSize)
	return apitype.ContentGeometryOf(contentSize, insets, s.minScale, s.maxScale, s.currentScale)
}

func (s *Controller) MinScale() float64 {
	return s.minScale
}

func (s *Controller) MaxScale() float64 {
	return s.maxScale
}

func (s *Controller) CurrentScale() float64 {
	return s.currentScale
}

func (s *Controller) IsAtRest() bool {
	return isAtRest(s.currentScale, s.minScale)
}

func (s *Controller) clampScale(scale float64) float64 {
	// The fit scale wins over the configured maximum when a small image in a
	// large viewport pushes the fit scale past it.
	max := math.Max(s.maxScale, s.minScale)
	if scale > max {
		return max
	}
	if scale < s.minScale {
		return s.minScale
	}
	return scale
}

func isAtRest(scale float64, minScale float64) bool {
	return math.Abs(scale-minScale) < restEpsilon
}
