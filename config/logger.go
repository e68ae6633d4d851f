package config

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger. Logs go to w (stderr in the CLI)
// so stdout stays reserved for summaries and tables.
func NewLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(w)
	log.SetLevel(lvl)
	return log, nil
}
