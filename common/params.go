package common

import "flag"

const (
	DefaultMinZoomScale        = 1.0
	DefaultMaxZoomScale        = 3.0
	DefaultInitialZoomScale    = 1.0
	DefaultDoubleTapZoomFactor = 2.0
)

type Params struct {
	imagePath           string
	logLevel            string
	minZoomScale        float64
	maxZoomScale        float64
	initialZoomScale    float64
	doubleTapZoomFactor float64
	noMetaDataCache     bool
}

func NewEmptyParams() *Params {
	return &Params{
		minZoomScale:        DefaultMinZoomScale,
		maxZoomScale:        DefaultMaxZoomScale,
		initialZoomScale:    DefaultInitialZoomScale,
		doubleTapZoomFactor: DefaultDoubleTapZoomFactor,
	}
}

func ParseParams() *Params {
	logLevel := flag.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	minZoomScale := flag.Float64("minZoomScale", DefaultMinZoomScale, "Lower zoom bound before fit-scale adjustment")
	maxZoomScale := flag.Float64("maxZoomScale", DefaultMaxZoomScale, "Upper zoom bound")
	initialZoomScale := flag.Float64("initialZoomScale", DefaultInitialZoomScale, "Zoom scale before the first layout pass")
	doubleTapZoomFactor := flag.Float64("doubleTapZoomFactor", DefaultDoubleTapZoomFactor, "Magnification factor for double tap zoom")
	noMetaDataCache := flag.Bool("noMetaDataCache", false, "Disable the image metadata cache database")

	flag.Parse()
	imagePath := flag.Arg(0)

	return &Params{
		imagePath:           imagePath,
		logLevel:            *logLevel,
		minZoomScale:        *minZoomScale,
		maxZoomScale:        *maxZoomScale,
		initialZoomScale:    *initialZoomScale,
		doubleTapZoomFactor: *doubleTapZoomFactor,
		noMetaDataCache:     *noMetaDataCache,
	}
}

func (s *Params) ImagePath() string {
	return s.imagePath
}

// SetImagePath fills in the image path when it was not given on the command
// line and had to be asked with a file chooser.
func (s *Params) SetImagePath(path string) {
	s.imagePath = path
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) MinZoomScale() float64 {
	return s.minZoomScale
}

func (s *Params) MaxZoomScale() float64 {
	return s.maxZoomScale
}

func (s *Params) InitialZoomScale() float64 {
	return s.initialZoomScale
}

func (s *Params) DoubleTapZoomFactor() float64 {
	return s.doubleTapZoomFactor
}

func (s *Params) NoMetaDataCache() bool {
	return s.noMetaDataCache
}
