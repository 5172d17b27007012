package viewport

import (
	"vincit.fi/image-magnifier/api"
	"vincit.fi/image-magnifier/api/apitype"
	"vincit.fi/image-magnifier/common"
	"vincit.fi/image-magnifier/common/logger"
)

// Service drives one Controller per displayed image. The host UI publishes
// geometry and gesture commands to the broker; the service answers with
// content geometry updates and zoom actions for the host widget to apply.
type Service struct {
	sender     api.Sender
	imageStore api.ImageStore
	controller *Controller

	imageFile      *apitype.ImageFile
	imageSize      apitype.Size
	viewportBounds apitype.Rect

	api.ViewportService
}

func NewService(params *common.Params, sender api.Sender, imageStore api.ImageStore) api.ViewportService {
	return &Service{
		sender:     sender,
		imageStore: imageStore,
		controller: NewController(params),
	}
}

func (s *Service) OpenImage(command *api.OpenImageCommand) {
	logger.Debug.Printf("Opening image '%s'", command.Path)

	imageFile, err := s.imageStore.AddImage(command.Path)
	if err != nil {
		s.sender.SendError("Could not open image", err)
		return
	}
	metaData, err := s.imageStore.MetaData(imageFile.Id())
	if err != nil {
		s.sender.SendError("Could not read image size", err)
		return
	}

	// Fresh state per image: the fit scale is recomputed from scratch.
	s.controller.Reset()
	s.imageFile = imageFile
	s.imageSize = metaData.Size()

	s.sender.SendCommandToTopic(api.ImageLoaded, &api.UpdateImageCommand{
		Image:    imageFile,
		MetaData: metaData,
	})
	s.recomputeGeometry()
}

func (s *Service) SetViewport(command *api.ViewportChangedCommand) {
	s.viewportBounds = command.Bounds
	s.recomputeGeometry()
}

func (s *Service) ZoomBy(command *api.ZoomStepCommand) {
	if !s.imageFile.IsValid() {
		return
	}
	s.publishGeometry(s.controller.ZoomBy(command.Delta))
}

func (s *Service) ZoomTo(command *api.ZoomToScaleCommand) {
	if !s.imageFile.IsValid() {
		return
	}
	s.publishGeometry(s.controller.OnZoomChanged(command.Scale))
}

func (s *Service) SingleTap(command *api.TapCommand) {
	if !s.imageFile.IsValid() {
		return
	}
	s.publishAction(s.controller.OnSingleTap())
}

func (s *Service) DoubleTap(command *api.TapCommand) {
	if !s.imageFile.IsValid() {
		return
	}
	s.publishAction(s.controller.OnDoubleTap(command.Point, s.viewportBounds))
}

func (s *Service) Close() {
	logger.Debug.Print("Shutting down viewport service")
}

func (s *Service) recomputeGeometry() {
	if !s.imageFile.IsValid() {
		return
	}

	geometry, err := s.controller.OnGeometryChanged(s.viewportBounds.Size(), s.imageSize)
	if err == ErrViewportNotReady {
		// Deferred, not failed: the host re-publishes its bounds after the
		// next layout pass and the fit runs then.
		logger.Trace.Print("Viewport not laid out yet, deferring fit")
		return
	}
	if err == ErrInvalidImage {
		logger.Debug.Printf("'%s' has no usable size, keeping previous geometry", s.imageFile)
		return
	}
	s.publishGeometry(geometry)
}

func (s *Service) publishGeometry(geometry apitype.ContentGeometry) {
	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': %s", s.imageFile, geometry)
	}
	s.sender.SendCommandToTopic(api.GeometryUpdated, &api.UpdateGeometryCommand{
		Image:    s.imageFile.Id(),
		Geometry: geometry,
	})
}

func (s *Service) publishAction(action apitype.ZoomAction) {
	if action.Type() == apitype.NoAction {
		return
	}
	s.sender.SendCommandToTopic(api.ZoomActionRequested, &api.ZoomActionCommand{
		Image:  s.imageFile.Id(),
		Action: action,
	})
}
