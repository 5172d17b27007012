package imageloader

import (
	"errors"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/pixiv/go-libjpeg/jpeg"

	"vincit.fi/image-magnifier/api"
	"vincit.fi/image-magnifier/api/apitype"
)

var fullDecodeOptions = &jpeg.DecoderOptions{}

// LibJPEGImageLoader decodes JPEG files through libjpeg, which can decode
// directly to a scale target, and falls back to imaging for other formats.
// EXIF orientation is applied after decode so the pixels match the intrinsic
// size reported by ReadMetaData.
type LibJPEGImageLoader struct {
	api.ImageLoader
}

func NewImageLoader() api.ImageLoader {
	return &LibJPEGImageLoader{}
}

func (s *LibJPEGImageLoader) LoadImage(imageFile *apitype.ImageFile, metaData *apitype.ImageMetaData) (image.Image, error) {
	if !imageFile.IsValid() {
		return nil, errors.New("invalid image file")
	}

	var decoded image.Image
	var err error
	if imageFile.IsJpeg() {
		decoded, err = decodeJpeg(imageFile.Path(), fullDecodeOptions)
	} else {
		decoded, err = imaging.Open(imageFile.Path())
	}
	if err != nil {
		return nil, err
	}
	return exifRotate(decoded, metaData), nil
}

func (s *LibJPEGImageLoader) LoadImageScaled(imageFile *apitype.ImageFile, metaData *apitype.ImageMetaData, size apitype.Size) (image.Image, error) {
	if !imageFile.IsValid() {
		return nil, errors.New("invalid image file")
	}
	if !imageFile.IsJpeg() {
		// No scaled decode path outside libjpeg, the cache scales instead.
		return s.LoadImage(imageFile, metaData)
	}

	decoded, err := decodeJpeg(imageFile.Path(), &jpeg.DecoderOptions{
		ScaleTarget: image.Rect(0, 0, int(size.Width()), int(size.Height())),
	})
	if err != nil {
		return nil, err
	}
	return exifRotate(decoded, metaData), nil
}

func decodeJpeg(path string, options *jpeg.DecoderOptions) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return jpeg.Decode(file, options)
}

func exifRotate(decoded image.Image, metaData *apitype.ImageMetaData) image.Image {
	rotation, flipped := metaData.Rotation()
	if flipped {
		decoded = imaging.FlipH(decoded)
	}
	switch rotation {
	case 90:
		decoded = imaging.Rotate90(decoded)
	case 180:
		decoded = imaging.Rotate180(decoded)
	case 270:
		decoded = imaging.Rotate270(decoded)
	}
	return convertToRgba(decoded)
}

// The UI texture upload expects *image.RGBA.
func convertToRgba(decoded image.Image) image.Image {
	if rgba, ok := decoded.(*image.RGBA); ok {
		return rgba
	}
	bounds := decoded.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, decoded.At(x, y))
		}
	}
	return rgba
}
