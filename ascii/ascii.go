package ascii

import "math/bits"

// ValidString reports whether s contains only ASCII bytes.
func ValidString(s string) bool {
	return IndexMask(s, 0x80) == -1
}

// IndexMask returns the index of the first byte of s with any bit of mask
// set, or -1.
func IndexMask(s string, mask byte) int {
	mask32 := uint32(mask)
	mask32 |= mask32 << 8
	mask32 |= mask32 << 16

	pos := 0
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		_ = s[7]
		first32 := uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
		second32 := uint32(s[4]) | uint32(s[5])<<8 | uint32(s[6])<<16 | uint32(s[7])<<24
		if (first32|second32)&mask32 != 0 {
			if first32 &= mask32; first32 != 0 {
				return pos + bits.TrailingZeros32(first32)/8
			}
			return pos + 4 + bits.TrailingZeros32(second32&mask32)/8
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i]&mask != 0 {
			return pos + i
		}
	}
	return -1
}

// EqualFold reports whether a and b are equal under ASCII case folding.
// Non-ASCII bytes must match exactly.
func EqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] && toLower(a[i]) != toLower(b[i]) {
			return false
		}
	}
	return true
}

func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return EqualFold(s[:len(prefix)], prefix)
}

func HasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return EqualFold(s[len(s)-len(suffix):], suffix)
}

// toLower converts ASCII uppercase to lowercase.
func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 0x20
	}
	return b
}
