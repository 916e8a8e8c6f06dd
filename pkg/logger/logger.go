package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is nil until Init or Get is called.
var Log *logrus.Logger

var once sync.Once

// Init configures Log from the environment. Call it once from main.
//
// LOG_LEVEL selects the level (default "info"); LOG_FORMAT=json switches to
// the JSON formatter, anything else gives coloured text.
func Init() {
	once.Do(func() {})
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}
	Log.SetOutput(os.Stdout)
}

// Get returns Log, creating a quiet default (warn level, stderr) when Init
// has not run. Packages that may be used from tests go through Get.
func Get() *logrus.Logger {
	once.Do(func() {
		if Log == nil {
			Log = logrus.New()
			Log.SetLevel(logrus.WarnLevel)
		}
	})
	return Log
}

// WithSystem returns an entry tagged with the subsystem name.
func WithSystem(name string) *logrus.Entry {
	return Get().WithField("system", name)
}
