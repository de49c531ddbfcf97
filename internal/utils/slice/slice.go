package slice

import "strings"

// Contains reports whether slice contains str.
func Contains(slice []string, str string) bool {
	for _, item := range slice {
		if item == str {
			return true
		}
	}
	return false
}

// RemoveStringFromSlice returns slice without any occurrence of str.
func RemoveStringFromSlice(slice []string, str string) []string {
	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if item != str {
			result = append(result, item)
		}
	}
	return result
}

// SplitCSV splits a comma-separated string, trimming whitespace and
// dropping empty entries.
func SplitCSV(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
