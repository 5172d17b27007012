package api

import "vincit.fi/image-magnifier/api/apitype"

type ErrorCommand struct {
	Message string
}

type UpdateImageCommand struct {
	Image    *apitype.ImageFile
	MetaData *apitype.ImageMetaData
}

type UpdateGeometryCommand struct {
	Image    apitype.ImageId
	Geometry apitype.ContentGeometry
}

type ZoomActionCommand struct {
	Image  apitype.ImageId
	Action apitype.ZoomAction
}

type Gui interface {
	SetCurrentImage(*UpdateImageCommand)
	UpdateGeometry(*UpdateGeometryCommand)
	ApplyZoomAction(*ZoomActionCommand)
	ShowError(*ErrorCommand)
	Run()
}
