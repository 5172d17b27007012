package database

import (
	"os"
	"path/filepath"
	"time"

	"github.com/upper/db/v4"

	"vincit.fi/image-magnifier/api/apitype"
	"vincit.fi/image-magnifier/common/logger"
)

// MetaDataReader resolves intrinsic size and orientation from the image file
// itself. Injected so the store does not depend on any decoder.
type MetaDataReader func(path string) (*apitype.ImageMetaData, error)

// MetaDataStore caches per-file image metadata keyed by directory and file
// name. A cached row is served as long as the file's modification time has
// not advanced past the stored one; only then is the file re-read.
type MetaDataStore struct {
	database       *Database
	collection     db.Collection
	metaDataReader MetaDataReader
}

func NewMetaDataStore(database *Database, metaDataReader MetaDataReader) *MetaDataStore {
	return &MetaDataStore{
		database:       database,
		metaDataReader: metaDataReader,
	}
}

func NewInMemoryMetaDataStore(metaDataReader MetaDataReader) *MetaDataStore {
	memoryDb := NewInMemoryDatabase()
	memoryDb.Migrate()
	return NewMetaDataStore(memoryDb, metaDataReader)
}

func (s *MetaDataStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("image_meta_data")
	}
	return s.collection
}

func (s *MetaDataStore) AddImage(path string) (*apitype.ImageFile, *apitype.ImageMetaData, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}

	directory := filepath.Dir(path)
	fileName := filepath.Base(path)

	if record, err := s.find(directory, fileName); err != nil {
		return nil, nil, err
	} else if record != nil && !record.ModifiedTime.Before(stat.ModTime()) {
		logger.Trace.Printf("Using cached metadata for '%s'", path)
		return toApiImageFile(record), toApiMetaData(record), nil
	}

	logger.Debug.Printf("Reading metadata for '%s'", path)
	metaData, err := s.metaDataReader(path)
	if err != nil {
		return nil, nil, err
	}

	record := toRecord(directory, fileName, metaData, stat.ModTime())
	stored, err := s.upsert(record)
	if err != nil {
		return nil, nil, err
	}
	return toApiImageFile(stored), toApiMetaData(stored), nil
}

func (s *MetaDataStore) GetImageCount() int {
	count, err := s.getCollection().Find().Count()
	if err != nil {
		logger.Error.Print("Cannot resolve image count ", err)
		return 0
	}
	return int(count)
}

func (s *MetaDataStore) find(directory string, fileName string) (*ImageMetaData, error) {
	var records []ImageMetaData
	err := s.getCollection().
		Find(db.Cond{
			"directory": directory,
			"file_name": fileName,
		}).
		All(&records)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (s *MetaDataStore) upsert(record *ImageMetaData) (*ImageMetaData, error) {
	if existing, err := s.find(record.Directory, record.FileName); err != nil {
		return nil, err
	} else if existing != nil {
		record.Id = existing.Id
		if err := s.getCollection().Find(db.Cond{"id": existing.Id}).Update(record); err != nil {
			return nil, err
		}
		return record, nil
	}

	result, err := s.getCollection().Insert(record)
	if err != nil {
		return nil, err
	}
	record.Id = result.ID().(int64)
	return record, nil
}

func toRecord(directory string, fileName string, metaData *apitype.ImageMetaData, modifiedTime time.Time) *ImageMetaData {
	rotation, flipped := metaData.Rotation()
	return &ImageMetaData{
		FileName:     fileName,
		Directory:    directory,
		ByteSize:     metaData.ByteSize(),
		ImageAngle:   int(rotation),
		ImageFlip:    flipped,
		Width:        int(metaData.Size().Width()),
		Height:       int(metaData.Size().Height()),
		ModifiedTime: modifiedTime,
	}
}

func toApiImageFile(record *ImageMetaData) *apitype.ImageFile {
	return apitype.NewImageFileWithId(apitype.ImageId(record.Id), record.Directory, record.FileName)
}

func toApiMetaData(record *ImageMetaData) *apitype.ImageMetaData {
	return apitype.NewImageMetaData(
		apitype.SizeOf(float64(record.Width), float64(record.Height)),
		float64(record.ImageAngle),
		record.ImageFlip,
		record.ByteSize)
}
