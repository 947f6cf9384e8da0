package adtools

import (
	"slices"

	"github.com/hashicorp/go-hclog"
)

// Logger is the structured diagnostic callback injected at construction.
// The connector has no other output channel: deprecation warnings, bind
// failures, and operation timings all flow through here.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// NewHCLogger adapts a hashicorp/go-hclog logger to the Logger interface.
// A nil argument uses a fresh hclog logger named "adtools".
func NewHCLogger(logger hclog.Logger) Logger {
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{Name: "adtools"})
	}
	return &hcLogger{logger: logger}
}

type hcLogger struct {
	logger hclog.Logger
}

func (h *hcLogger) Debug(msg string, fields map[string]any) { h.logger.Debug(msg, flatten(fields)...) }
func (h *hcLogger) Info(msg string, fields map[string]any)  { h.logger.Info(msg, flatten(fields)...) }
func (h *hcLogger) Warn(msg string, fields map[string]any)  { h.logger.Warn(msg, flatten(fields)...) }
func (h *hcLogger) Error(msg string, fields map[string]any) { h.logger.Error(msg, flatten(fields)...) }

// flatten converts a field map into hclog's alternating key/value form, in
// stable key order.
func flatten(fields map[string]any) []any {
	args := make([]any, 0, 2*len(fields))
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}
