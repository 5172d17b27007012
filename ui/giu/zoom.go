package gui

import "math"

const fitZoomIndex = 0

type ZoomLevel struct {
	scale float64
	label string
}

// The first entry is the fit scale, resolved against the current geometry
// when selected. The rest are absolute scales.
var zoomLevels = []ZoomLevel{
	{0, "Fit"},
	{0.1, "10 %"},
	{0.25, "25 %"},
	{0.5, "50 %"},
	{0.75, "75 %"},
	{1, "100 %"},
	{1.25, "125 %"},
	{1.5, "150 %"},
	{2, "200 %"},
	{3, "300 %"},
	{4, "400 %"},
	{5, "500 %"},
}

var zoomLevelLabels []string

func init() {
	for _, zoomLevel := range zoomLevels {
		zoomLevelLabels = append(zoomLevelLabels, zoomLevel.label)
	}
}

func ZoomLabels() []string {
	return zoomLevelLabels
}

// ZoomStatus tracks the zoom combo selection. The actual scale lives in the
// viewport controller; this only maps combo entries to scale requests and
// keeps the selection in sync with published geometry.
type ZoomStatus struct {
	currentZoomIndex int32
}

func NewZoomStatus() *ZoomStatus {
	return &ZoomStatus{currentZoomIndex: fitZoomIndex}
}

func (s *ZoomStatus) SelectedZoom() *int32 {
	return &s.currentZoomIndex
}

func (s *ZoomStatus) IsFitSelected() bool {
	return s.currentZoomIndex == fitZoomIndex
}

func (s *ZoomStatus) FixedZoomLevel() float64 {
	return zoomLevels[s.currentZoomIndex].scale
}

// SyncToScale moves the selection to the entry matching the given scale,
// preferring the fit entry when the scale is the fit scale. Scales with no
// matching entry leave the selection alone.
func (s *ZoomStatus) SyncToScale(scale float64, minScale float64) {
	const epsilon = 0.001

	if math.Abs(scale-minScale) < epsilon {
		s.currentZoomIndex = fitZoomIndex
		return
	}
	for i, zoomLevel := range zoomLevels {
		if i != fitZoomIndex && math.Abs(scale-zoomLevel.scale) < epsilon {
			s.currentZoomIndex = int32(i)
			return
		}
	}
}
