package widget

import (
	"image"
	"time"

	"github.com/AllenDang/giu"

	"vincit.fi/image-magnifier/api/apitype"
)

// A second click within this window turns a pending single tap into a
// double tap.
const doubleTapWindow = 300 * time.Millisecond

var requestFrame = giu.Update

// TapTracker arbitrates between single and double taps across frames. A
// click is held back for the double tap window; if a second click lands in
// time the pending single tap is cancelled.
type TapTracker struct {
	pending      bool
	pendingPoint apitype.Point
	pendingTime  time.Time
}

func NewTapTracker() *TapTracker {
	return &TapTracker{}
}

func (s *TapTracker) Click(point apitype.Point) {
	s.pending = true
	s.pendingPoint = point
	s.pendingTime = time.Now()

	// The UI only renders on input. Request one frame right after the
	// window expires so the held back tap gets resolved.
	time.AfterFunc(doubleTapWindow, requestFrame)
}

func (s *TapTracker) DoubleClick() {
	s.pending = false
}

// Poll returns the held back tap once the double tap window has passed.
func (s *TapTracker) Poll() (apitype.Point, bool) {
	if !s.pending || time.Since(s.pendingTime) < doubleTapWindow {
		return apitype.Point{}, false
	}
	s.pending = false
	return s.pendingPoint, true
}

// MagnifyImageWidget renders the image at its content size, offset by the
// centering insets, and converts clicks on the viewport into tap callbacks
// with viewport-relative coordinates.
type MagnifyImageWidget struct {
	texturedImage *TexturedImage
	geometry      apitype.ContentGeometry
	taps          *TapTracker
	onSingleTap   func(apitype.Point)
	onDoubleTap   func(apitype.Point)
	giu.ImageWidget
}

func MagnifyImage(texturedImage *TexturedImage, geometry apitype.ContentGeometry, taps *TapTracker) *MagnifyImageWidget {
	return &MagnifyImageWidget{
		texturedImage: texturedImage,
		geometry:      geometry,
		taps:          taps,
		ImageWidget:   *giu.Image(texturedImage.Texture()),
	}
}

func (s *MagnifyImageWidget) OnSingleTap(callback func(apitype.Point)) *MagnifyImageWidget {
	s.onSingleTap = callback
	return s
}

func (s *MagnifyImageWidget) OnDoubleTap(callback func(apitype.Point)) *MagnifyImageWidget {
	s.onDoubleTap = callback
	return s
}

func (s *MagnifyImageWidget) Build() {
	maxW, maxH := giu.GetAvailableRegion()
	origin := giu.GetCursorScreenPos()

	insets := s.geometry.Insets()
	contentSize := s.geometry.ContentSize()

	dummyV := giu.Dummy(1, float32(insets.Top()))
	dummyH := giu.Dummy(float32(insets.Left()), 1)
	s.ImageWidget.Size(float32(contentSize.Width()), float32(contentSize.Height()))

	giu.Column(
		dummyV,
		giu.Row(dummyH, &s.ImageWidget),
	).Build()

	s.handleTaps(origin, maxW, maxH)
}

// contentPointOf converts a screen mouse position to the content coordinate
// space the tap consumers expect: relative to the content origin, with the
// centering insets taken out. Clicks in the inset band map to coordinates
// outside the content; the zoom-to-rect consumer clamps those.
func contentPointOf(mousePos image.Point, origin image.Point, insets apitype.Insets) apitype.Point {
	return apitype.PointOf(
		float64(mousePos.X-origin.X)-insets.Left(),
		float64(mousePos.Y-origin.Y)-insets.Top())
}

func (s *MagnifyImageWidget) handleTaps(origin image.Point, width float32, height float32) {
	viewportArea := image.Rectangle{
		Min: origin,
		Max: origin.Add(image.Point{X: int(width), Y: int(height)}),
	}

	mousePos := giu.GetMousePos()
	if mousePos.In(viewportArea) {
		tapPoint := contentPointOf(mousePos, origin, s.geometry.Insets())
		if giu.IsMouseDoubleClicked(giu.MouseButtonLeft) {
			s.taps.DoubleClick()
			if s.onDoubleTap != nil {
				s.onDoubleTap(tapPoint)
			}
		} else if giu.IsMouseClicked(giu.MouseButtonLeft) {
			s.taps.Click(tapPoint)
		}
	}

	if point, ok := s.taps.Poll(); ok && s.onSingleTap != nil {
		s.onSingleTap(point)
	}
}
