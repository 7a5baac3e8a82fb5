package output

// LoggerPort is a leveled structured logger. args are alternating
// key/value pairs appended to the entry.
type LoggerPort interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	WithField(key string, value any) LoggerPort
	WithFields(fields map[string]any) LoggerPort

	// Close flushes buffered entries.
	Close() error
}
