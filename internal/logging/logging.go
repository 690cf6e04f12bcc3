package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config of the process logger. Without OutputFile only stdout is used.
type Config struct {
	Level      string
	OutputFile string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	Console    io.Writer // defaults to os.Stdout
}

// New builds a logrus logger writing to stdout and, optionally, to a rotating file.
// Unknown levels fall back to info.
func New(config Config) (*logrus.Logger, error) {

	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})

	console := config.Console
	if console == nil {
		console = os.Stdout
	}

	writers := []io.Writer{console}

	if config.OutputFile != "" {

		if err := os.MkdirAll(filepath.Dir(config.OutputFile), 0755); err != nil {
			return nil, errors.Wrap(err, "create log directory")
		}

		writers = append(writers, &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}

	logger.SetOutput(io.MultiWriter(writers...))

	return logger, nil
}
