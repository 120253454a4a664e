package utils

import "strings"

// ASCII byte helpers for the matcher hot path. Matching is byte-oriented:
// the tokenizer only understands ASCII letter-case boundaries, so full
// rune handling is not needed here.

// IsUpperASCII reports whether b is an ASCII uppercase letter.
func IsUpperASCII(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

// IsLowerASCII reports whether b is an ASCII lowercase letter.
func IsLowerASCII(b byte) bool {
	return 'a' <= b && b <= 'z'
}

// IsDigitASCII reports whether b is an ASCII digit.
func IsDigitASCII(b byte) bool {
	return '0' <= b && b <= '9'
}

// IsAlnumASCII reports whether b is an ASCII letter or digit.
func IsAlnumASCII(b byte) bool {
	return IsUpperASCII(b) || IsLowerASCII(b) || IsDigitASCII(b)
}

// IsSpaceASCII reports whether b is ASCII whitespace.
func IsSpaceASCII(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// IsSeparator checks if a byte is a token separator character.
func IsSeparator(b byte) bool {
	return b == ' ' || b == '_' || b == '-' || b == '.' || b == '/'
}

// ToLowerASCII lower-cases a single ASCII byte.
func ToLowerASCII(b byte) byte {
	if IsUpperASCII(b) {
		return b + ('a' - 'A')
	}
	return b
}

// LowerASCII lower-cases ASCII letters in s, returning s unchanged when
// it contains no uppercase letters.
func LowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if IsUpperASCII(s[i]) {
			var sb strings.Builder
			sb.Grow(len(s))
			sb.WriteString(s[:i])
			for j := i; j < len(s); j++ {
				sb.WriteByte(ToLowerASCII(s[j]))
			}
			return sb.String()
		}
	}
	return s
}
