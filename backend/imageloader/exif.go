package imageloader

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/rwcarlsen/goexif/exif"

	"vincit.fi/image-magnifier/api/apitype"
	"vincit.fi/image-magnifier/common/logger"
)

const exifUnchangedOrientation = 1

// exifOrientationToRotation maps an EXIF orientation value to a
// counterclockwise rotation in degrees plus a horizontal flip, the
// decomposition the imaging transforms use.
func exifOrientationToRotation(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return 0, false
	case 2:
		return 0, true
	case 3:
		return 180, false
	case 4:
		return 180, true
	case 5:
		return 90, true
	case 6:
		return 270, false
	case 7:
		return 270, true
	case 8:
		return 90, false
	}
	return 0, false
}

func rotationSwapsAxes(rotation float64) bool {
	return rotation == 90 || rotation == 270
}

// ReadMetaData resolves intrinsic size, orientation and byte size from the
// file headers without decoding any pixels. The returned size has the EXIF
// orientation already applied, so it is directly usable for fit computation.
func ReadMetaData(path string) (*apitype.ImageMetaData, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return nil, err
	}

	orientation := exifUnchangedOrientation
	if _, err := file.Seek(0, 0); err == nil {
		if exifData, err := exif.Decode(file); err == nil {
			if tag, err := exifData.Get(exif.Orientation); err == nil {
				if value, err := tag.Int(0); err == nil {
					orientation = value
				}
			}
		} else {
			logger.Trace.Printf("No EXIF data in '%s'", path)
		}
	}

	rotation, flipped := exifOrientationToRotation(orientation)
	width, height := float64(config.Width), float64(config.Height)
	if rotationSwapsAxes(rotation) {
		width, height = height, width
	}

	return apitype.NewImageMetaData(
		apitype.SizeOf(width, height), rotation, flipped, stat.Size()), nil
}
