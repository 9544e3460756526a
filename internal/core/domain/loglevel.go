package domain

import "strings"

// LogLevel is the severity of a vertex log line. Values match slog.
type LogLevel int

// Log levels, four apart like slog.
const (
	LogLevelDebug LogLevel = -4
	LogLevelInfo  LogLevel = 0
	LogLevelWarn  LogLevel = 4
	LogLevelError LogLevel = 8
)

const logLevelStep = 4

var logLevelNames = map[LogLevel]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

// String returns the upper-case level name. Unknown levels print as INFO.
func (l LogLevel) String() string {
	if name, ok := logLevelNames[l]; ok {
		return name
	}
	return "INFO"
}

// Louder returns the next more verbose level, stopping at debug.
func (l LogLevel) Louder() LogLevel {
	return max(l-logLevelStep, LogLevelDebug)
}

// Quieter returns the next less verbose level, stopping at error.
func (l LogLevel) Quieter() LogLevel {
	return min(l+logLevelStep, LogLevelError)
}

// FormatLogLine renders msg as a "[LEVEL] msg" line.
func FormatLogLine(level LogLevel, msg string) string {
	return "[" + level.String() + "] " + msg
}

// ParseLogLine splits a line written by FormatLogLine. Lines without a
// recognized prefix are raw tool output and count as INFO.
func ParseLogLine(line string) (LogLevel, string) {
	rest, ok := strings.CutPrefix(line, "[")
	if !ok {
		return LogLevelInfo, line
	}
	name, msg, ok := strings.Cut(rest, "] ")
	if !ok {
		return LogLevelInfo, line
	}
	for level, n := range logLevelNames {
		if n == name {
			return level, msg
		}
	}
	return LogLevelInfo, line
}
