package logging

// LogEntry represents a structured log record emitted during an evolutionary run
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// General structured data (generation counters, operator names, ...)
	Fields map[string]interface{}
}
