package utils

import (
	"fmt"
	"log"
	"regexp"
	"strings"
)

// Log levels, lowest first.
const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// LogLevel filters SafeDebug/SafeInfo/SafeWarn. main sets it from LOG_LEVEL.
var LogLevel = LogLevelInfo

// card numbers: 13-19 digits, optionally grouped by spaces or dashes
var cardRegex = regexp.MustCompile(`\b(?:\d[ -]?){12,18}\d\b`)

func ParseLogLevel(level string) int {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// MaskCardNumber keeps the last four digits: ****-****-****-0366.
func MaskCardNumber(ccNum string) string {
	digits := make([]rune, 0, len(ccNum))
	for _, r := range ccNum {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 4 {
		return "****"
	}
	return "****-****-****-" + string(digits[len(digits)-4:])
}

// MaskString masks anything that looks like a card number.
func MaskString(input string) string {
	return cardRegex.ReplaceAllStringFunc(input, MaskCardNumber)
}

func SafeDebug(format string, args ...interface{}) {
	if LogLevel > LogLevelDebug {
		return
	}
	log.Printf("[DEBUG] %s", MaskString(fmt.Sprintf(format, args...)))
}

func SafeInfo(format string, args ...interface{}) {
	if LogLevel > LogLevelInfo {
		return
	}
	log.Printf("[INFO] %s", MaskString(fmt.Sprintf(format, args...)))
}

func SafeWarn(format string, args ...interface{}) {
	if LogLevel > LogLevelWarn {
		return
	}
	log.Printf("[WARN] %s", MaskString(fmt.Sprintf(format, args...)))
}

func SafeError(format string, args ...interface{}) {
	log.Printf("[ERROR] %s", MaskString(fmt.Sprintf(format, args...)))
}
