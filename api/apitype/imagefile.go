package apitype

import (
	"path/filepath"
	"strings"
)

type ImageId int64

const NoImage = ImageId(-1)

type ImageFile struct {
	id        ImageId
	directory string
	filename  string
	path      string
}

var (
	EmptyImageFile       = ImageFile{id: NoImage, path: ""}
	supportedFileEndings = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
)

func NewImageFileWithId(id ImageId, fileDir string, fileName string) *ImageFile {
	return &ImageFile{
		id:        id,
		directory: fileDir,
		filename:  fileName,
		path:      filepath.Join(fileDir, fileName),
	}
}

func NewImageFile(fileDir string, fileName string) *ImageFile {
	return NewImageFileWithId(NoImage, fileDir, fileName)
}

func NewImageFileFromPath(id ImageId, path string) *ImageFile {
	return NewImageFileWithId(id, filepath.Dir(path), filepath.Base(path))
}

func GetEmptyImageFile() *ImageFile {
	return &EmptyImageFile
}

func (s *ImageFile) IsValid() bool {
	return s != nil && s.path != ""
}

func (s *ImageFile) Id() ImageId {
	if s != nil {
		return s.id
	}
	return NoImage
}

func (s *ImageFile) Directory() string {
	if s != nil {
		return s.directory
	}
	return ""
}

func (s *ImageFile) FileName() string {
	if s != nil {
		return s.filename
	}
	return ""
}

func (s *ImageFile) Path() string {
	if s != nil {
		return s.path
	}
	return ""
}

func (s *ImageFile) IsJpeg() bool {
	ending := strings.ToLower(filepath.Ext(s.FileName()))
	return ending == ".jpg" || ending == ".jpeg"
}

func (s *ImageFile) String() string {
	if s == nil {
		return "ImageFile<nil>"
	}
	if !s.IsValid() {
		return "ImageFile<invalid>"
	}
	return "ImageFile{" + s.filename + "}"
}

func IsSupported(fileName string) bool {
	return supportedFileEndings[strings.ToLower(filepath.Ext(fileName))]
}
