package gui

import (
	"fmt"
	"math"
	"time"

	"github.com/AllenDang/giu"

	"vincit.fi/image-magnifier/api"
	"vincit.fi/image-magnifier/api/apitype"
	"vincit.fi/image-magnifier/common"
	"vincit.fi/image-magnifier/common/event"
	"vincit.fi/image-magnifier/common/logger"
	"vincit.fi/image-magnifier/ui/giu/widget"
)

const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 600

	zoomStepDelta = 0.25
)

// Ui is the giu host for the viewport service. It owns the window and the
// texture, publishes viewport and gesture events to the broker and applies
// the geometry and zoom actions the service answers with.
type Ui struct {
	win                 *giu.MasterWindow
	imageCache          api.ImageStore
	broker              *event.Broker
	sender              api.Sender
	imagePath           string
	currentImageTexture *widget.TexturedImage
	taps                *widget.TapTracker
	zoomStatus          *ZoomStatus

	viewportBounds apitype.Rect
	geometry       apitype.ContentGeometry
	hasGeometry    bool

	api.Gui
}

func NewUi(params *common.Params, broker *event.Broker, imageCache api.ImageStore) api.Gui {
	return &Ui{
		win:                 giu.NewMasterWindow("Image Magnifier", defaultWindowWidth, defaultWindowHeight, 0),
		imageCache:          imageCache,
		broker:              broker,
		sender:              broker,
		imagePath:           params.ImagePath(),
		currentImageTexture: widget.NewEmptyTexturedImage(imageCache),
		taps:                widget.NewTapTracker(),
		zoomStatus:          NewZoomStatus(),
	}
}

func (s *Ui) Run() {
	s.sender.SendCommandToTopic(api.ImageRequestOpen, &api.OpenImageCommand{Path: s.imagePath})

	s.win.Run(func() {
		// Queued backend events mutate UI state, so they run here on the UI
		// thread before the frame is built, never on a bus goroutine.
		s.broker.DispatchGuiEvents()

		renderStart := time.Now()

		giu.SingleWindow().
			Layout(
				giu.Row(s.zoomControls()...),
				giu.Separator(),
				giu.Custom(s.buildViewport),
				giu.PrepareMsgbox(),
			)

		renderTime := time.Since(renderStart)
		if renderTime >= 10*time.Millisecond {
			logger.Debug.Printf("Rendered UI in %s", renderTime)
		} else if logger.IsLogLevel(logger.TRACE) && renderTime >= time.Millisecond {
			logger.Trace.Printf("Rendered UI in %s", renderTime)
		}

		s.handleKeyPress()
	})
}

func (s *Ui) zoomControls() []giu.Widget {
	zoomOutButton := giu.Button(" - ").OnClick(func() {
		s.sender.SendCommandToTopic(api.ZoomStep, &api.ZoomStepCommand{Delta: -zoomStepDelta})
	})
	zoomInButton := giu.Button(" + ").OnClick(func() {
		s.sender.SendCommandToTopic(api.ZoomStep, &api.ZoomStepCommand{Delta: zoomStepDelta})
	})
	zoomCombo := giu.Combo("", zoomLevelLabels[*s.zoomStatus.SelectedZoom()], ZoomLabels(), s.zoomStatus.SelectedZoom()).
		Size(90).
		OnChange(s.onZoomSelected)

	scaleLabel := giu.Label("")
	if s.hasGeometry {
		scaleLabel = giu.Label(fmt.Sprintf("%.0f %%", s.geometry.CurrentScale()*100))
	}

	return []giu.Widget{zoomOutButton, zoomCombo, zoomInButton, scaleLabel}
}

func (s *Ui) onZoomSelected() {
	if s.zoomStatus.IsFitSelected() {
		if s.hasGeometry {
			s.sender.SendCommandToTopic(api.ZoomToScale, &api.ZoomToScaleCommand{Scale: s.geometry.MinScale()})
		}
	} else {
		s.sender.SendCommandToTopic(api.ZoomToScale, &api.ZoomToScaleCommand{Scale: s.zoomStatus.FixedZoomLevel()})
	}
}

func (s *Ui) buildViewport() {
	width, height := giu.GetAvailableRegion()
	newBounds := apitype.RectOf(0, 0, float64(width), float64(height))

	if newBounds != s.viewportBounds {
		if logger.IsLogLevel(logger.TRACE) {
			logger.Trace.Printf("Viewport changed from %s to %s", s.viewportBounds, newBounds)
		}
		s.viewportBounds = newBounds
		s.sender.SendCommandToTopic(api.ViewportResized, &api.ViewportChangedCommand{Bounds: newBounds})
	}

	if !s.currentImageTexture.IsValid() {
		return
	}

	widget.MagnifyImage(s.currentImageTexture, s.geometry, s.taps).
		OnSingleTap(func(point apitype.Point) {
			s.sender.SendCommandToTopic(api.TapSingle, &api.TapCommand{Point: point})
		}).
		OnDoubleTap(func(point apitype.Point) {
			s.sender.SendCommandToTopic(api.TapDouble, &api.TapCommand{Point: point})
		}).
		Build()
}

func (s *Ui) handleKeyPress() {
	if giu.IsKeyPressed(giu.KeyEqual) || giu.IsKeyPressed(giu.KeyKPAdd) {
		s.sender.SendCommandToTopic(api.ZoomStep, &api.ZoomStepCommand{Delta: zoomStepDelta})
	}
	if giu.IsKeyPressed(giu.KeyMinus) || giu.IsKeyPressed(giu.KeyKPSubtract) {
		s.sender.SendCommandToTopic(api.ZoomStep, &api.ZoomStepCommand{Delta: -zoomStepDelta})
	}
	if giu.IsKeyPressed(giu.KeyBackspace) || giu.IsKeyPressed(giu.Key0) {
		if s.hasGeometry {
			s.sender.SendCommandToTopic(api.ZoomToScale, &api.ZoomToScaleCommand{Scale: s.geometry.MinScale()})
		}
	}
}

func (s *Ui) SetCurrentImage(command *api.UpdateImageCommand) {
	size := command.MetaData.Size()
	s.currentImageTexture.ChangeImage(
		command.Image.Id(),
		float32(size.Width()),
		float32(size.Height()))

	width, height := s.win.GetSize()
	s.currentImageTexture.LoadImageAsTexture(float32(width), float32(height))
}

func (s *Ui) UpdateGeometry(command *api.UpdateGeometryCommand) {
	if command.Image != s.currentImageTexture.ImageId() {
		return
	}
	s.geometry = command.Geometry
	s.hasGeometry = true
	s.zoomStatus.SyncToScale(s.geometry.CurrentScale(), s.geometry.MinScale())

	contentSize := s.geometry.ContentSize()
	s.currentImageTexture.LoadImageAsTexture(
		float32(contentSize.Width()),
		float32(contentSize.Height()))
}

// ApplyZoomAction resolves a zoom action into an absolute scale request.
// The resulting scale goes back through the service so it gets clamped and
// published as geometry like any other zoom change.
func (s *Ui) ApplyZoomAction(command *api.ZoomActionCommand) {
	if command.Image != s.currentImageTexture.ImageId() {
		return
	}

	action := command.Action
	switch action.Type() {
	case apitype.SetScale:
		s.sender.SendCommandToTopic(api.ZoomToScale, &api.ZoomToScaleCommand{Scale: action.Scale()})
	case apitype.ZoomToRect:
		rect := action.Rect()
		if rect.Width() <= 0 || rect.Height() <= 0 || !s.hasGeometry {
			return
		}
		factor := math.Min(
			s.viewportBounds.Width()/rect.Width(),
			s.viewportBounds.Height()/rect.Height())
		newScale := s.geometry.CurrentScale() * factor
		s.sender.SendCommandToTopic(api.ZoomToScale, &api.ZoomToScaleCommand{Scale: newScale})
	}
}

func (s *Ui) ShowError(command *api.ErrorCommand) {
	logger.Error.Printf("Error: %s", command.Message)
	giu.Msgbox("Error", command.Message)
}
