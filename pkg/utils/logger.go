package utils

import (
	"github.com/sirupsen/logrus"
)

// Log is the process-wide structured logger.
var Log = logrus.New()

// InitLogger switches Log to JSON output at the given level ("debug",
// "info", ...). Unknown levels fall back to info.
func InitLogger(level string) {
	Log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithField("level", level).Warn("Unknown LOG_LEVEL, using info")
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}
