package api

type Topic string

const (
	// Host -> backend
	ImageRequestOpen Topic = "event-image-request-open"
	ViewportResized  Topic = "event-viewport-resized"
	ZoomStep         Topic = "event-zoom-step"
	ZoomToScale      Topic = "event-zoom-to-scale"
	TapSingle        Topic = "event-tap-single"
	TapDouble        Topic = "event-tap-double"

	// Backend -> host
	ImageLoaded         Topic = "event-image-loaded"
	GeometryUpdated     Topic = "event-geometry-updated"
	ZoomActionRequested Topic = "event-zoom-action-requested"
	ErrorOccurred       Topic = "event-error"
)
