package utils

import (
	"strings"
	"unicode"
)

// ContainsDigit reports whether s holds any digit character. Names must not.
func ContainsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ValidEmail applies the minimal address check: an '@', a '.' and more than
// three characters overall.
func ValidEmail(s string) bool {
	return len(s) > 3 && strings.Contains(s, "@") && strings.Contains(s, ".")
}
