package utf8

import (
	stdlib "unicode/utf8"

	"github.com/mhr3/kmp/ascii"
)

// ValidString reports whether s is entirely valid UTF-8.
func ValidString(s string) bool {
	// speed up the common case
	idx := ascii.IndexMask(s, 0x80)
	if idx == -1 {
		return true
	}

	return stdlib.ValidString(s[idx:])
}
