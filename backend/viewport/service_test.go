package viewport

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vincit.fi/image-magnifier/api"
	"vincit.fi/image-magnifier/api/apitype"
	"vincit.fi/image-magnifier/common"
)

type stubSender struct {
	api.Sender

	topics   []api.Topic
	commands []apitype.Command
	errors   []string
}

func (s *stubSender) SendToTopic(topic api.Topic) {
	s.topics = append(s.topics, topic)
}

func (s *stubSender) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	s.topics = append(s.topics, topic)
	s.commands = append(s.commands, command)
}

func (s *stubSender) SendError(message string, err error) {
	s.errors = append(s.errors, message)
}

func (s *stubSender) lastGeometry(t *testing.T) *api.UpdateGeometryCommand {
	for i := len(s.commands) - 1; i >= 0; i-- {
		if command, ok := s.commands[i].(*api.UpdateGeometryCommand); ok {
			return command
		}
	}
	t.Fatal("no geometry update published")
	return nil
}

func (s *stubSender) lastAction(t *testing.T) *api.ZoomActionCommand {
	for i := len(s.commands) - 1; i >= 0; i-- {
		if command, ok := s.commands[i].(*api.ZoomActionCommand); ok {
			return command
		}
	}
	t.Fatal("no zoom action published")
	return nil
}

type stubImageStore struct {
	api.ImageStore

	imageSize apitype.Size
	failOpen  bool
}

func (s *stubImageStore) AddImage(path string) (*apitype.ImageFile, error) {
	if s.failOpen {
		return nil, errors.New("no such file")
	}
	return apitype.NewImageFileFromPath(1, path), nil
}

func (s *stubImageStore) MetaData(imageId apitype.ImageId) (*apitype.ImageMetaData, error) {
	return apitype.NewImageMetaData(s.imageSize, 0, false, 1234), nil
}

func (s *stubImageStore) GetFull(imageId apitype.ImageId) (image.Image, error) {
	return nil, errors.New("not implemented")
}

func initServiceTest(imageSize apitype.Size) (*Service, *stubSender) {
	sender := &stubSender{}
	store := &stubImageStore{imageSize: imageSize}
	service := NewService(common.NewEmptyParams(), sender, store).(*Service)
	return service, sender
}

func TestService_OpenImage(t *testing.T) {
	a := require.New(t)

	t.Run("Publishes image and geometry once viewport is known", func(t *testing.T) {
		sut, sender := initServiceTest(apitype.SizeOf(600, 600))
		sut.SetViewport(&api.ViewportChangedCommand{Bounds: apitype.RectOf(0, 0, 300, 400)})

		sut.OpenImage(&api.OpenImageCommand{Path: "images/a.jpg"})

		a.Contains(sender.topics, api.ImageLoaded)
		geometry := sender.lastGeometry(t).Geometry
		a.InDelta(0.5, geometry.MinScale(), 1e-9)
		a.InDelta(300, geometry.ContentSize().Width(), 1e-9)
	})
	t.Run("Defers fit until the first real layout pass", func(t *testing.T) {
		sut, sender := initServiceTest(apitype.SizeOf(600, 600))

		sut.OpenImage(&api.OpenImageCommand{Path: "images/a.jpg"})
		a.NotContains(sender.topics, api.GeometryUpdated)

		sut.SetViewport(&api.ViewportChangedCommand{Bounds: apitype.RectOf(0, 0, 300, 400)})
		a.Contains(sender.topics, api.GeometryUpdated)
	})
	t.Run("Unreadable file reports an error and publishes nothing", func(t *testing.T) {
		sender := &stubSender{}
		store := &stubImageStore{failOpen: true}
		sut := NewService(common.NewEmptyParams(), sender, store).(*Service)

		sut.OpenImage(&api.OpenImageCommand{Path: "images/missing.jpg"})

		a.Equal(1, len(sender.errors))
		a.Empty(sender.topics)
	})
	t.Run("Image without size keeps previous geometry silently", func(t *testing.T) {
		sut, sender := initServiceTest(apitype.ZeroSize())
		sut.SetViewport(&api.ViewportChangedCommand{Bounds: apitype.RectOf(0, 0, 300, 400)})

		sut.OpenImage(&api.OpenImageCommand{Path: "images/broken.jpg"})

		a.Contains(sender.topics, api.ImageLoaded)
		a.NotContains(sender.topics, api.GeometryUpdated)
		a.Empty(sender.errors)
	})
}

func TestService_Zoom(t *testing.T) {
	a := require.New(t)

	t.Run("ZoomTo publishes clamped geometry", func(t *testing.T) {
		sut, sender := initServiceTest(apitype.SizeOf(600, 600))
		sut.SetViewport(&api.ViewportChangedCommand{Bounds: apitype.RectOf(0, 0, 300, 400)})
		sut.OpenImage(&api.OpenImageCommand{Path: "images/a.jpg"})

		sut.ZoomTo(&api.ZoomToScaleCommand{Scale: 99})

		a.InDelta(3.0, sender.lastGeometry(t).Geometry.CurrentScale(), 1e-9)
	})
	t.Run("ZoomBy steps from the current scale", func(t *testing.T) {
		sut, sender := initServiceTest(apitype.SizeOf(600, 600))
		sut.SetViewport(&api.ViewportChangedCommand{Bounds: apitype.RectOf(0, 0, 300, 400)})
		sut.OpenImage(&api.OpenImageCommand{Path: "images/a.jpg"})

		sut.ZoomBy(&api.ZoomStepCommand{Delta: 0.25})

		a.InDelta(0.75, sender.lastGeometry(t).Geometry.CurrentScale(), 1e-9)
	})
	t.Run("Zoom before image is attached does nothing", func(t *testing.T) {
		sut, sender := initServiceTest(apitype.SizeOf(600, 600))

		sut.ZoomBy(&api.ZoomStepCommand{Delta: 0.25})

		a.Empty(sender.topics)
	})
}

func TestService_Taps(t *testing.T) {
	a := assert.New(t)

	t.Run("Double tap at rest requests zoom to rect", func(t *testing.T) {
		sut, sender := initServiceTest(apitype.SizeOf(600, 600))
		sut.SetViewport(&api.ViewportChangedCommand{Bounds: apitype.RectOf(0, 0, 300, 400)})
		sut.OpenImage(&api.OpenImageCommand{Path: "images/a.jpg"})

		sut.DoubleTap(&api.TapCommand{Point: apitype.PointOf(150, 150)})

		action := sender.lastAction(t).Action
		a.Equal(apitype.ZoomToRect, action.Type())
		a.InDelta(75, action.Rect().X(), 1e-9)
		a.InDelta(50, action.Rect().Y(), 1e-9)
		a.InDelta(150, action.Rect().Width(), 1e-9)
		a.InDelta(200, action.Rect().Height(), 1e-9)
	})
	t.Run("Double tap when zoomed requests reset", func(t *testing.T) {
		sut, sender := initServiceTest(apitype.SizeOf(600, 600))
		sut.SetViewport(&api.ViewportChangedCommand{Bounds: apitype.RectOf(0, 0, 300, 400)})
		sut.OpenImage(&api.OpenImageCommand{Path: "images/a.jpg"})
		sut.ZoomTo(&api.ZoomToScaleCommand{Scale: 2.0})

		sut.DoubleTap(&api.TapCommand{Point: apitype.PointOf(150, 150)})

		action := sender.lastAction(t).Action
		a.Equal(apitype.SetScale, action.Type())
		a.InDelta(0.5, action.Scale(), 1e-9)
	})
	t.Run("Single tap at rest publishes nothing", func(t *testing.T) {
		sut, sender := initServiceTest(apitype.SizeOf(600, 600))
		sut.SetViewport(&api.ViewportChangedCommand{Bounds: apitype.RectOf(0, 0, 300, 400)})
		sut.OpenImage(&api.OpenImageCommand{Path: "images/a.jpg"})
		before := len(sender.commands)

		sut.SingleTap(&api.TapCommand{Point: apitype.PointOf(150, 150)})

		a.Equal(before, len(sender.commands))
	})
	t.Run("Single tap when zoomed requests reset", func(t *testing.T) {
		sut, sender := initServiceTest(apitype.SizeOf(600, 600))
		sut.SetViewport(&api.ViewportChangedCommand{Bounds: apitype.RectOf(0, 0, 300, 400)})
		sut.OpenImage(&api.OpenImageCommand{Path: "images/a.jpg"})
		sut.ZoomTo(&api.ZoomToScaleCommand{Scale: 2.0})

		sut.SingleTap(&api.TapCommand{Point: apitype.PointOf(150, 150)})

		action := sender.lastAction(t).Action
		a.Equal(apitype.SetScale, action.Type())
	})
}
