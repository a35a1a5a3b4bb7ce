package charclass

// IsHexDigit reports whether b is one of 0-9, a-f, A-F.
func IsHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// HexValue returns the numeric value of a hex digit byte. Callers must check
// IsHexDigit first; an invalid byte returns 0.
func HexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}
