package database

import "time"

type ImageMetaData struct {
	Id           int64     `db:"id,omitempty"`
	FileName     string    `db:"file_name"`
	Directory    string    `db:"directory"`
	ByteSize     int64     `db:"byte_size"`
	ImageAngle   int       `db:"image_angle"`
	ImageFlip    bool      `db:"image_flip"`
	Width        int       `db:"width"`
	Height       int       `db:"height"`
	ModifiedTime time.Time `db:"modified_timestamp"`
}
