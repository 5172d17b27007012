package imageloader

import (
	"errors"
	"image"
	"sync"

	"vincit.fi/image-magnifier/api"
	"vincit.fi/image-magnifier/api/apitype"
	"vincit.fi/image-magnifier/backend/database"
	"vincit.fi/image-magnifier/common/logger"
)

// DefaultImageStore keeps one Instance per opened image. Metadata resolution
// goes through the metadata cache store; pixel decoding is lazy.
type DefaultImageStore struct {
	imageCache    map[apitype.ImageId]*Instance
	mux           sync.Mutex
	imageLoader   api.ImageLoader
	metaDataStore *database.MetaDataStore

	api.ImageStore
}

func NewImageCache(imageLoader api.ImageLoader, metaDataStore *database.MetaDataStore) api.ImageStore {
	return &DefaultImageStore{
		imageCache:    map[apitype.ImageId]*Instance{},
		imageLoader:   imageLoader,
		metaDataStore: metaDataStore,
	}
}

func (s *DefaultImageStore) AddImage(path string) (*apitype.ImageFile, error) {
	imageFile, metaData, err := s.metaDataStore.AddImage(path)
	if err != nil {
		return nil, err
	}

	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.imageCache[imageFile.Id()]; !ok {
		s.imageCache[imageFile.Id()] = NewInstance(imageFile, metaData, s.imageLoader)
	}
	return imageFile, nil
}

func (s *DefaultImageStore) GetFull(imageId apitype.ImageId) (image.Image, error) {
	return s.getInstance(imageId).GetFull()
}

func (s *DefaultImageStore) GetScaled(imageId apitype.ImageId, size apitype.Size) (image.Image, error) {
	return s.getInstance(imageId).GetScaled(size)
}

func (s *DefaultImageStore) GetThumbnail(imageId apitype.ImageId) (image.Image, error) {
	return s.getInstance(imageId).GetThumbnail()
}

func (s *DefaultImageStore) MetaData(imageId apitype.ImageId) (*apitype.ImageMetaData, error) {
	instance := s.getInstance(imageId)
	if !instance.IsValid() {
		return nil, errors.New("unknown image")
	}
	return instance.MetaData(), nil
}

func (s *DefaultImageStore) Purge() {
	s.mux.Lock()
	defer s.mux.Unlock()
	logger.Debug.Print("Purging decoded image cache")
	for _, instance := range s.imageCache {
		instance.Purge()
	}
}

func (s *DefaultImageStore) getInstance(imageId apitype.ImageId) *Instance {
	s.mux.Lock()
	defer s.mux.Unlock()
	if instance, ok := s.imageCache[imageId]; ok {
		return instance
	}
	return &emptyInstance
}
