package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var _ Logger = (*AdvisorLogger)(nil)
var _ Logger = NoOpLogger{}

func TestAdvisorLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LogLevelWarn, Format: "text", Output: &buf})

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
}

func TestAdvisorLogger_WithThread(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "json", Output: &buf})

	l.WithThread("u42", "turn-1").Info("turn started")

	line := buf.String()
	assert.Contains(t, line, `"thread_id":"u42"`)
	assert.Contains(t, line, `"turn_id":"turn-1"`)

	// The original logger is unchanged.
	buf.Reset()
	l.Info("plain")
	assert.NotContains(t, buf.String(), "thread_id")
}

func TestAdvisorLogger_KeyValueArgs(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "json", Output: &buf})

	l.Info("turn completed", "thread_id", "u1", "turn_id", "abc")

	line := buf.String()
	assert.Contains(t, line, `"msg":"turn completed"`)
	assert.Contains(t, line, `"thread_id":"u1"`)
	assert.Contains(t, line, `"turn_id":"abc"`)
	assert.NotContains(t, line, "EXTRA")
}

func TestAdvisorLogger_DanglingKey(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "json", Output: &buf})

	l.Info("odd args", "orphan")

	assert.Contains(t, buf.String(), `"!BADKEY":"orphan"`)
}

func TestLogModelCall(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "json", Output: &buf})

	LogModelCall(l, "advisor-mock", 42, 150*time.Millisecond, nil)

	line := buf.String()
	assert.Contains(t, line, `"msg":"model call completed"`)
	assert.Contains(t, line, `"model":"advisor-mock"`)
	assert.Contains(t, line, `"token_count":42`)

	buf.Reset()
	LogModelCall(l, "advisor-mock", 0, time.Second, errors.New("boom"))

	line = buf.String()
	assert.Contains(t, line, `"msg":"model call failed"`)
	assert.Contains(t, line, `"error":"boom"`)
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "UNKNOWN", LogLevel(99).String())
}

func TestAdvisorLogger_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&LoggerConfig{Level: LogLevelInfo, Format: "json", Output: &buf})

	l.WithComponent("orchestrator").Info("ready")
	assert.True(t, strings.Contains(buf.String(), `"component":"orchestrator"`))
}
