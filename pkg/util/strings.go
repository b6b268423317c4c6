package util

// Substring returns s[start:end] clamped to the bounds of s
func Substring(s string, start int, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= end {
		return ""
	}

	return s[start:end]
}

func TrimString(s string, length int) string {
	return Substring(s, 0, length)
}
