package config

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"io"
	"strings"
)

// NewLogger builds the process logger writing to w, filtered at the configured level.
func (l Log) NewLogger(w io.Writer) log.Logger {
	w = log.NewSyncWriter(w)
	var logger log.Logger
	if l.Format == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}
	logger = level.NewFilter(logger, l.allow())
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func (l Log) allow() level.Option {
	switch strings.ToLower(l.Level) {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	case "none":
		return level.AllowNone()
	default:
		return level.AllowInfo()
	}
}
