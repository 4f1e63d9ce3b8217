package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// BoostrapLogger wires the shared logger. Lambda log groups work better with
// JSON lines, local runs keep the colored text formatter.
func BoostrapLogger() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetReportCaller(true)
	Log.SetLevel(logrus.DebugLevel)

	if os.Getenv("APP_ENV") == "local" {
		Log.SetFormatter(&logrus.TextFormatter{})
	} else {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}
}
