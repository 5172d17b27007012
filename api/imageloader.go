package api

import (
	"image"
	"vincit.fi/image-magnifier/api/apitype"
)

type ImageLoader interface {
	LoadImage(imageFile *apitype.ImageFile, metaData *apitype.ImageMetaData) (image.Image, error)
	LoadImageScaled(imageFile *apitype.ImageFile, metaData *apitype.ImageMetaData, size apitype.Size) (image.Image, error)
}

// ImageStore is the decoded-image cache the UI reads from. MetaData never
// decodes pixels; intrinsic size and orientation come from the file headers,
// possibly served by the metadata cache database.
type ImageStore interface {
	AddImage(path string) (*apitype.ImageFile, error)
	GetFull(imageId apitype.ImageId) (image.Image, error)
	GetScaled(imageId apitype.ImageId, size apitype.Size) (image.Image, error)
	GetThumbnail(imageId apitype.ImageId) (image.Image, error)
	MetaData(imageId apitype.ImageId) (*apitype.ImageMetaData, error)
	Purge()
}
