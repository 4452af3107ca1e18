package runner

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger writing to w. format is "text" or
// "json".
func NewLogger(level, format string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errConfig, err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	switch format {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("%w: unknown log format %q", errConfig, format)
	}
	return log, nil
}
