package httpapi

import (
	"encoding/json"
	"sort"
	"strings"

	"gaia-pathfinder/internal/application/port/output"

	"github.com/rs/zerolog"
)

// logSink re-emits httplog's zerolog JSON lines through the application
// logger so access logs share one format with everything else.
type logSink struct {
	logger output.LoggerPort
}

func newLogSink(logger output.LoggerPort) *logSink {
	return &logSink{logger: logger}
}

func (s *logSink) Write(p []byte) (int, error) {
	var fields map[string]any
	if err := json.Unmarshal(p, &fields); err != nil {
		s.logger.Info(strings.TrimSpace(string(p)))
		return len(p), nil
	}

	msg, _ := fields[zerolog.MessageFieldName].(string)
	level, _ := fields[zerolog.LevelFieldName].(string)
	delete(fields, zerolog.MessageFieldName)
	delete(fields, zerolog.LevelFieldName)
	delete(fields, zerolog.TimestampFieldName)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}

	switch level {
	case "trace", "debug":
		s.logger.Debug(msg, args...)
	case "warn":
		s.logger.Warn(msg, args...)
	case "error", "fatal", "panic":
		s.logger.Error(msg, args...)
	default:
		s.logger.Info(msg, args...)
	}
	return len(p), nil
}
