package constants

const (
	ImageMagnifierDir    = ".image-magnifier"
	MetaDataDatabaseName = "metadata.db"
)
