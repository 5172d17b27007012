package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var (
	nullWriter   = &NullWriter{}
	currentLevel = INFO

	Error *log.Logger
	Warn  *log.Logger
	Info  *log.Logger
	Debug *log.Logger
	Trace *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	initLoggers(ERROR - 1)
}

// IsLogLevel tells whether messages of the given level are written. Callers
// use this to skip formatting work on hot paths (render loop).
func IsLogLevel(logLevel LogLevel) bool {
	return currentLevel >= logLevel
}

func Initialize(logLevel LogLevel) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	currentLevel = logLevel
	initLoggers(logLevel)
}

func initLoggers(logLevel LogLevel) {
	Error = newLogger(ERROR, logLevel, "ERROR: ", os.Stderr)
	Warn = newLogger(WARN, logLevel, "WARN:  ", os.Stdout)
	Info = newLogger(INFO, logLevel, "INFO:  ", os.Stdout)
	Debug = newLogger(DEBUG, logLevel, "DEBUG: ", os.Stdout)
	Trace = newLogger(TRACE, logLevel, "TRACE: ", os.Stdout)
}

func newLogger(level LogLevel, enabledLevel LogLevel, prefix string, writer io.Writer) *log.Logger {
	if enabledLevel < level {
		writer = nullWriter
	}
	return log.New(writer, prefix, log.Ldate|log.Ltime|log.Lshortfile)
}
