package utils

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "****-****-****-0366", MaskCardNumber("4532015112830366"))
	assert.Equal(t, "****-****-****-0366", MaskCardNumber("4532-0151-1283-0366"))
	assert.Equal(t, "****", MaskCardNumber("12"))
	assert.Equal(t, "****", MaskCardNumber(""))
}

func TestMaskString(t *testing.T) {
	got := MaskString("fraud stored cc=4532015112830366 amt=2.86 zip=28202")
	assert.Equal(t, "fraud stored cc=****-****-****-0366 amt=2.86 zip=28202", got)

	assert.Equal(t, "card ****-****-****-0366 flagged", MaskString("card 4532 0151 1283 0366 flagged"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("WARNING"))
	assert.Equal(t, LogLevelError, ParseLogLevel("error"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
}

func TestLeveledLoggingFilters(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	prev := LogLevel
	LogLevel = LogLevelWarn
	defer func() { LogLevel = prev }()

	SafeInfo("hidden %s", "4532015112830366")
	SafeWarn("shown %s", "4532015112830366")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown ****-****-****-0366")
}
