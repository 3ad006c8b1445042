// Package logutil adapts logrus loggers to the anygrid Logger interface.
package logutil

import (
	"github.com/sirupsen/logrus"
)

// Logrus forwards anygrid diagnostics to a logrus logger, carrying the
// component as a structured field.
type Logrus struct{ L *logrus.Logger }

func (l Logrus) Infof(component string, format string, args ...interface{}) {
	l.L.WithField("component", component).Infof(format, args...)
}

func (l Logrus) Errorf(component string, format string, args ...interface{}) {
	l.L.WithField("component", component).Errorf(format, args...)
}
