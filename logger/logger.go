package logger

import (
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the minimal logging surface shared by every package.
// Components take a Logger so tests can swap in a recorder.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields holds structured key/value pairs for a single log line.
type Fields map[string]any

// ServiceName is attached to every structured log line as service_name.
const ServiceName = "siris-blog"

// Log is the process-wide logger. It works at info level before Init runs.
var Log Logger = NewLogger("info")

// Init rebuilds Log with the given level name.
// Empty or unknown values fall back to info.
func Init(level string) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		level = "info"
	}
	Log = NewLogger(level)
}

// NewLogger creates a JSON console logger that emits datetime, level and
// message plus any structured fields at the top level.
func NewLogger(level string) Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	formatter := slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	})
	h.SetFormatter(formatter)

	return slog.NewWithHandlers(h)
}

// personalKeys name contact-form fields that never reach the log in full.
var personalKeys = map[string]bool{"email": true, "phone": true, "password": true}

// withServiceName returns a copy of fields with service_name set and
// personal values masked.
func withServiceName(fields Fields) Fields {
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		if personalKeys[strings.ToLower(k)] {
			v = mask(v)
		}
		out[k] = v
	}
	if _, ok := out["service_name"]; !ok {
		out["service_name"] = ServiceName
	}
	return out
}

// mask keeps the first rune of a string value and hides the rest.
func mask(v any) any {
	s, ok := v.(string)
	if !ok || s == "" {
		return "***"
	}
	r := []rune(s)
	return string(r[0]) + "***"
}

// InfoWithFields logs msg at info level with structured fields.
// Loggers other than gookit's receive the fields appended to the message.
func InfoWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Info(msg)
		return
	}
	Log.Info(msg, " ", map[string]any(fields))
}

func DebugWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Debug(msg)
		return
	}
	Log.Debug(msg, " ", map[string]any(fields))
}

func WarnWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Warn(msg)
		return
	}
	Log.Warn(msg, " ", map[string]any(fields))
}

func ErrorWithFields(msg string, fields Fields) {
	fields = withServiceName(fields)
	if lg, ok := Log.(*slog.Logger); ok {
		lg.WithFields(slog.M(fields)).Error(msg)
		return
	}
	Log.Error(msg, " ", map[string]any(fields))
}
