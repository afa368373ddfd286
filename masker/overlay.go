package masker

const (
	RedactPrefixLen = 2
	RedactSuffixLen = 2
)

// Redact hides the middle of v for logging: [head]*[tail]
func Redact(v string) string {
	if v == "" {
		return ""
	}

	return addOverlay(v, RedactPrefixLen, RedactSuffixLen, "*")
}

func addOverlay(v string, prefixLen, suffixLen int, mask string) string {
	items := []rune(v)
	n := len(items)

	// too short to keep anything readable
	if n <= prefixLen+suffixLen {
		return mask
	}

	if suffixLen <= 0 {
		return string(items[:prefixLen]) + mask
	}

	return string(items[:prefixLen]) + mask + string(items[n-suffixLen:])
}
