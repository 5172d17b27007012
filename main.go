package main

import (
	"os"
	"path/filepath"

	"github.com/OpenDiablo2/dialog"

	"vincit.fi/image-magnifier/api"
	"vincit.fi/image-magnifier/backend/database"
	"vincit.fi/image-magnifier/backend/imageloader"
	"vincit.fi/image-magnifier/backend/viewport"
	"vincit.fi/image-magnifier/common"
	"vincit.fi/image-magnifier/common/constants"
	"vincit.fi/image-magnifier/common/event"
	"vincit.fi/image-magnifier/common/logger"
	gui "vincit.fi/image-magnifier/ui/giu"
)

const eventBusQueueSize = 1000

func main() {
	params := common.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))

	if params.ImagePath() == "" {
		dialog.Init()
		imagePath, err := dialog.File().
			Title("Select image").
			Filter("Image files", "jpg", "jpeg", "png").
			Load()
		if err != nil {
			logger.Error.Fatal("No image selected ", err)
		}
		params.SetImagePath(imagePath)
	}

	metaDataStore := initMetaDataStore(params)
	imageCache := imageloader.NewImageCache(imageloader.NewImageLoader(), metaDataStore)

	broker := event.InitBus(eventBusQueueSize)
	viewportService := viewport.NewService(params, broker, imageCache)
	defer viewportService.Close()

	broker.Subscribe(api.ImageRequestOpen, viewportService.OpenImage)
	broker.Subscribe(api.ViewportResized, viewportService.SetViewport)
	broker.Subscribe(api.ZoomStep, viewportService.ZoomBy)
	broker.Subscribe(api.ZoomToScale, viewportService.ZoomTo)
	broker.Subscribe(api.TapSingle, viewportService.SingleTap)
	broker.Subscribe(api.TapDouble, viewportService.DoubleTap)

	ui := gui.NewUi(params, broker, imageCache)
	broker.ConnectToGui(api.ImageLoaded, ui.SetCurrentImage)
	broker.ConnectToGui(api.GeometryUpdated, ui.UpdateGeometry)
	broker.ConnectToGui(api.ZoomActionRequested, ui.ApplyZoomAction)
	broker.ConnectToGui(api.ErrorOccurred, ui.ShowError)

	ui.Run()
}

func initMetaDataStore(params *common.Params) *database.MetaDataStore {
	if params.NoMetaDataCache() {
		logger.Debug.Print("Using in-memory metadata cache")
		return database.NewInMemoryMetaDataStore(imageloader.ReadMetaData)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Warn.Print("Cannot resolve home directory, using in-memory metadata cache ", err)
		return database.NewInMemoryMetaDataStore(imageloader.ReadMetaData)
	}

	cacheDir := filepath.Join(homeDir, constants.ImageMagnifierDir)
	if err := os.MkdirAll(cacheDir, 0700); err != nil {
		logger.Warn.Print("Cannot create cache directory, using in-memory metadata cache ", err)
		return database.NewInMemoryMetaDataStore(imageloader.ReadMetaData)
	}

	metaDataDb := database.NewDatabase(filepath.Join(cacheDir, constants.MetaDataDatabaseName))
	metaDataDb.Migrate()
	return database.NewMetaDataStore(metaDataDb, imageloader.ReadMetaData)
}
