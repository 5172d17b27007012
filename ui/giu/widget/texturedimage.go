package widget

import (
	"image"

	"github.com/AllenDang/giu"

	"vincit.fi/image-magnifier/api"
	"vincit.fi/image-magnifier/api/apitype"
	"vincit.fi/image-magnifier/common/logger"
)

// TexturedImage holds the GPU texture for the currently displayed image.
// Textures are uploaded asynchronously; until the upload finishes the
// previous texture keeps rendering.
type TexturedImage struct {
	imageId        apitype.ImageId
	width          float32
	height         float32
	texture        *giu.Texture
	oldTexture     *giu.Texture
	lastWidth      int
	lastHeight     int
	newImageLoaded bool
	imageCache     api.ImageStore
}

func NewEmptyTexturedImage(imageCache api.ImageStore) *TexturedImage {
	return &TexturedImage{
		imageId:    apitype.NoImage,
		lastWidth:  -1,
		lastHeight: -1,
		imageCache: imageCache,
	}
}

func (s *TexturedImage) ChangeImage(imageId apitype.ImageId, width float32, height float32) {
	s.oldTexture = s.texture
	s.newImageLoaded = false

	s.imageId = imageId
	s.width = width
	s.height = height

	s.lastWidth = -1
	s.lastHeight = -1
}

func (s *TexturedImage) ImageId() apitype.ImageId {
	return s.imageId
}

func (s *TexturedImage) Width() float32 {
	return s.width
}

func (s *TexturedImage) Height() float32 {
	return s.height
}

func (s *TexturedImage) Texture() *giu.Texture {
	return s.texture
}

func (s *TexturedImage) IsValid() bool {
	return s.imageId != apitype.NoImage
}

// LoadImageAsTexture decodes the image scaled to roughly the given size and
// uploads it as a texture. Returns the current texture immediately; the new
// one swaps in once the upload goroutine finishes.
func (s *TexturedImage) LoadImageAsTexture(width float32, height float32) *giu.Texture {
	if s.imageCache == nil || !s.IsValid() {
		return nil
	}

	if s.newImageLoaded {
		if s.texture != nil && int(width) == s.lastWidth && int(height) == s.lastHeight {
			return s.texture
		}
	}

	s.lastWidth = int(width)
	s.lastHeight = int(height)

	scaledImage, err := s.imageCache.GetScaled(s.imageId, apitype.SizeOf(float64(s.lastWidth), float64(s.lastHeight)))
	if err != nil {
		logger.Error.Print("Could not load scaled image for texture: ", err)
		return s.texture
	}
	if scaledImage == nil {
		s.texture = nil
	} else {
		go func() {
			var err error
			s.texture, err = giu.NewTextureFromRgba(scaledImage.(*image.RGBA))
			s.newImageLoaded = true
			if err != nil {
				logger.Error.Print(err)
			}
			giu.Update()
		}()
	}
	return s.texture
}
