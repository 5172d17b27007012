package api

import "vincit.fi/image-magnifier/api/apitype"

// Commands from the host UI to the viewport service. Tap commands carry the
// already-disambiguated tap location in content coordinates; single vs.
// double tap arbitration is the host gesture layer's job.

type OpenImageCommand struct {
	Path string
}

type ViewportChangedCommand struct {
	Bounds apitype.Rect
}

type ZoomStepCommand struct {
	Delta float64
}

type ZoomToScaleCommand struct {
	Scale float64
}

type TapCommand struct {
	Point apitype.Point
}

// ViewportService owns one fit controller per displayed image. All operations
// are driven by broker subscriptions, see the wiring in main.
type ViewportService interface {
	OpenImage(*OpenImageCommand)
	SetViewport(*ViewportChangedCommand)
	ZoomBy(*ZoomStepCommand)
	ZoomTo(*ZoomToScaleCommand)
	SingleTap(*TapCommand)
	DoubleTap(*TapCommand)
	Close()
}
