package env

import (
	"strconv"
	"strings"
)

// Infer guesses the type of raw text, in order: bool, int, float64, string.
//
// Only "true" and "false" (any case) are booleans; digit strings such as "1"
// infer as integers. Inference never fails: text that matches no numeric
// shape, or overflows int, is returned unchanged.
func Infer(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}

	if isDigits(raw) {
		if i, err := strconv.Atoi(raw); err == nil {
			return i
		}
		return raw
	}

	if IsDecimal(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}

	return raw
}

// IsDecimal reports whether s has the shape "<digits>.<digits>" or
// ".<digits>": exactly one dot, digits after it, and digits or nothing
// before it. "123." and "." do not qualify.
func IsDecimal(s string) bool {
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || strings.Contains(frac, ".") {
		return false
	}
	if !isDigits(frac) {
		return false
	}
	return whole == "" || isDigits(whole)
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
