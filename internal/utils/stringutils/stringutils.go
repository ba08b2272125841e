package stringutils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type StringNumber interface {
	~int | int8 | int16 | int32 | ~int64 | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

func ToString[T StringNumber](v T) string {
	switch a := any(v).(type) {
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(int64(v), 10)
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(uint64(v), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", a)
	}
}

// Truncate cuts s to at most maxLength runes, trims the cut and appends "...".
func Truncate(s string, maxLength int) string {
	if s == "" {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:maxLength])) + "..."
}
