package apitype

// ImageMetaData is the immutable per-file data the magnifier needs before a
// single pixel is decoded: intrinsic size (with EXIF orientation already
// applied) and the transform to run after decode.
type ImageMetaData struct {
	size     Size
	rotation float64
	flipped  bool
	byteSize int64
}

func NewImageMetaData(size Size, rotation float64, flipped bool, byteSize int64) *ImageMetaData {
	return &ImageMetaData{
		size:     size,
		rotation: rotation,
		flipped:  flipped,
		byteSize: byteSize,
	}
}

func (s *ImageMetaData) Size() Size {
	if s != nil {
		return s.size
	}
	return ZeroSize()
}

func (s *ImageMetaData) Rotation() (float64, bool) {
	if s != nil {
		return s.rotation, s.flipped
	}
	return 0, false
}

func (s *ImageMetaData) ByteSize() int64 {
	if s != nil {
		return s.byteSize
	}
	return 0
}

func (s *ImageMetaData) ByteSizeInMB() float64 {
	return float64(s.ByteSize()) / (1024.0 * 1024.0)
}
