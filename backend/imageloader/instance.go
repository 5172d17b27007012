package imageloader

import (
	"errors"
	"image"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"vincit.fi/image-magnifier/api"
	"vincit.fi/image-magnifier/api/apitype"
	"vincit.fi/image-magnifier/common/logger"
)

const (
	thumbnailWidth  = 100
	thumbnailHeight = thumbnailWidth
)

var emptyInstance = Instance{}

// Instance caches the decoded variants of one image: the full decode, the
// latest scaled copy and a small thumbnail.
type Instance struct {
	imageFile   *apitype.ImageFile
	metaData    *apitype.ImageMetaData
	full        image.Image
	scaled      image.Image
	thumbnail   image.Image
	imageLoader api.ImageLoader
	mux         sync.Mutex
}

func NewInstance(imageFile *apitype.ImageFile, metaData *apitype.ImageMetaData, imageLoader api.ImageLoader) *Instance {
	return &Instance{
		imageFile:   imageFile,
		metaData:    metaData,
		imageLoader: imageLoader,
	}
}

func (s *Instance) IsValid() bool {
	return s.imageFile.IsValid()
}

func (s *Instance) MetaData() *apitype.ImageMetaData {
	return s.metaData
}

func (s *Instance) GetFull() (image.Image, error) {
	if !s.IsValid() {
		return nil, errors.New("invalid image file")
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	return s.getFull()
}

func (s *Instance) getFull() (image.Image, error) {
	if s.full != nil {
		logger.Trace.Print("Use cached full image")
		return s.full, nil
	}

	startTime := time.Now()
	full, err := s.imageLoader.LoadImage(s.imageFile, s.metaData)
	if err != nil {
		logger.Error.Print("Could not load full image: " + s.imageFile.Path())
		return nil, err
	}
	s.full = full
	logger.Trace.Printf("'%s': full loaded in %s", s.imageFile.Path(), time.Since(startTime))
	return s.full, nil
}

// GetScaled returns the image scaled to fit the given size, preserving
// aspect ratio. The previous scaled copy is reused when the size matches.
func (s *Instance) GetScaled(size apitype.Size) (image.Image, error) {
	if !s.IsValid() {
		return nil, errors.New("invalid image file")
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	full, err := s.getFull()
	if err != nil {
		return nil, err
	}

	fullSize := apitype.SizeFromRectangle(full.Bounds())
	scale := apitype.ScaleToFit(fullSize, size)
	targetSize := fullSize.Scaled(scale)
	width, height := int(targetSize.Width()), int(targetSize.Height())

	if s.scaled != nil {
		cachedSize := s.scaled.Bounds()
		if cachedSize.Dx() == width && cachedSize.Dy() == height {
			logger.Trace.Print("Use cached scaled image")
			return s.scaled, nil
		}
	}

	startTime := time.Now()
	s.scaled = convertToRgba(imaging.Resize(full, width, height, imaging.Linear))
	logger.Trace.Printf("'%s': scaled to %d x %d in %s", s.imageFile.Path(), width, height, time.Since(startTime))
	return s.scaled, nil
}

func (s *Instance) GetThumbnail() (image.Image, error) {
	if !s.IsValid() {
		return nil, errors.New("invalid image file")
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if s.thumbnail != nil {
		return s.thumbnail, nil
	}

	full, err := s.getFull()
	if err != nil {
		return nil, err
	}
	s.thumbnail = convertToRgba(resize.Thumbnail(thumbnailWidth, thumbnailHeight, full, resize.Bicubic))
	return s.thumbnail, nil
}

// Purge drops everything but the thumbnail.
func (s *Instance) Purge() {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.full = nil
	s.scaled = nil
}
