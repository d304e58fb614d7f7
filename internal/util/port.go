package util

import (
	"strconv"
	"strings"
)

// ParsePort parses a decimal 16-bit port number. A single leading '+' is
// accepted. Anything else that is not a number in 0-65535 reports false.
func ParsePort(s string) (uint16, bool) {
	s = strings.TrimPrefix(s, "+")
	if s == "" || strings.HasPrefix(s, "+") {
		return 0, false
	}
	p, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(p), true
}
