package utils

import (
	"strconv"
	"strings"
)

// StrToInt parses str, falling back to defaultValue on any error
func StrToInt(str string, defaultValue int) int {
	result, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return defaultValue
	}
	return result
}
