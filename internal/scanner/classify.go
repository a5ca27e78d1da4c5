package scanner

// ===== Классификаторы =====

// isWordByte: ASCII буква или цифра, без учёта локали.
func isWordByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// IsWordByte reports whether b is an ASCII letter or digit.
func IsWordByte(b byte) bool { return isWordByte(b) }
