package utils

import (
	"github.com/sirupsen/logrus"
)

// Log is the shared logger. Bootstrap configures level, formatter and output.
var Log = logrus.New()
