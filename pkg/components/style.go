package components

import (
	"fmt"
	"strconv"
	"strings"
)

// Color returns the 24-bit foreground escape for a hex colour such as
// "#3b82f6". Malformed input yields "".
func Color(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// BgColor is Color for the background.
func BgColor(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

// Paint wraps s in the foreground colour hex. An empty or malformed colour
// returns s unchanged.
func Paint(hex, s string) string {
	pre := Color(hex)
	if pre == "" || s == "" {
		return s
	}
	return pre + s + Reset()
}

// Bold wraps s in bold on/off escapes.
func Bold(s string) string {
	return "\x1b[1m" + s + "\x1b[22m"
}

// Dim wraps s in faint on/off escapes.
func Dim(s string) string {
	return "\x1b[2m" + s + "\x1b[22m"
}

// Reset clears all attributes.
func Reset() string {
	return "\x1b[0m"
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// ValidHex reports whether s is a "#rgb" or "#rrggbb" colour.
func ValidHex(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	_, _, _, ok := parseHex(s)
	return ok
}
