package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cuv/internal/core/domain"
)

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "ERROR", domain.LogLevelError.String())
	assert.Equal(t, "INFO", domain.LogLevel(42).String())
}

func TestLogLevel_Steps(t *testing.T) {
	assert.Equal(t, domain.LogLevelInfo, domain.LogLevelWarn.Louder())
	assert.Equal(t, domain.LogLevelDebug, domain.LogLevelDebug.Louder())
	assert.Equal(t, domain.LogLevelError, domain.LogLevelWarn.Quieter())
	assert.Equal(t, domain.LogLevelError, domain.LogLevelError.Quieter())
}

func TestParseLogLine(t *testing.T) {
	tests := []struct {
		line  string
		level domain.LogLevel
		msg   string
	}{
		{domain.FormatLogLine(domain.LogLevelWarn, "module fmt is external"), domain.LogLevelWarn, "module fmt is external"},
		{"[DEBUG] 3 rules", domain.LogLevelDebug, "3 rules"},
		{"a.cpp:1:8: error: expected ';'", domain.LogLevelInfo, "a.cpp:1:8: error: expected ';'"},
		{"[note] raw", domain.LogLevelInfo, "[note] raw"},
		{"[ERROR]", domain.LogLevelInfo, "[ERROR]"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			level, msg := domain.ParseLogLine(tt.line)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.msg, msg)
		})
	}
}
