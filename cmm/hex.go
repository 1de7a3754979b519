package cmm

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses a six-digit RGB hex string such as "3C7AB0". A leading '#'
// is accepted.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("rgb hex %q: want 6 digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("rgb hex %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// FormatHex renders c as six upper-case hex digits.
func FormatHex(c RGB) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}
