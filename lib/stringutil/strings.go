package stringutil

import "strings"

func Empty(vals ...string) bool {
	for _, val := range vals {
		if val == "" {
			return true
		}
	}

	return false
}

// IsBlank returns true if the string is empty or only contains whitespace.
func IsBlank(val string) bool {
	return strings.TrimSpace(val) == ""
}

// SplitKeepEmpty is [strings.Split] except that an empty input returns no parts.
func SplitKeepEmpty(val, sep string) []string {
	if val == "" {
		return nil
	}

	return strings.Split(val, sep)
}
