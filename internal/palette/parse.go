// Package palette turns user color literals into normalized float channels
// and resolves the ray color mode into the two colors the shader consumes.
package palette

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RGBA is a color with every channel normally in [0,1].
// Channels may be NaN when a literal contains an unparsable number.
type RGBA struct {
	R, G, B, A float64
}

// White is returned for empty or unrecognized literals.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// Parse converts "#RGB", "#RRGGBB", "#RRGGBBAA", "rgb(r,g,b)" or "rgba(r,g,b,a)"
// into an RGBA. Anything else, including "", yields opaque white. Malformed
// numbers are not rejected: they come through as NaN in their channel.
func Parse(literal string) RGBA {
	c := White
	if literal == "" {
		return c
	}

	switch {
	case strings.HasPrefix(literal, "rgba"):
		parts := splitArgs(literal, len("rgba("))
		c.R, c.G, c.B = channelBytes(parts)
		c.A = math.NaN()
		if len(parts) > 3 {
			c.A = parseFloatPrefix(parts[3])
		}
	case strings.HasPrefix(literal, "rgb"):
		parts := splitArgs(literal, len("rgb("))
		c.R, c.G, c.B = channelBytes(parts)
	case strings.HasPrefix(literal, "#"):
		hex := literal[1:]
		switch len(hex) {
		case 3:
			c.R = parseIntPrefix(hex[0:1]+hex[0:1], 16) / 255
			c.G = parseIntPrefix(hex[1:2]+hex[1:2], 16) / 255
			c.B = parseIntPrefix(hex[2:3]+hex[2:3], 16) / 255
		case 6:
			c.R = parseIntPrefix(hex[0:2], 16) / 255
			c.G = parseIntPrefix(hex[2:4], 16) / 255
			c.B = parseIntPrefix(hex[4:6], 16) / 255
		case 8:
			c.R = parseIntPrefix(hex[0:2], 16) / 255
			c.G = parseIntPrefix(hex[2:4], 16) / 255
			c.B = parseIntPrefix(hex[4:6], 16) / 255
			c.A = parseIntPrefix(hex[6:8], 16) / 255
		}
	}

	return c
}

// splitArgs drops the function prefix and the closing character, then splits on commas.
func splitArgs(literal string, prefix int) []string {
	if len(literal) <= prefix {
		return nil
	}
	return strings.Split(literal[prefix:len(literal)-1], ",")
}

func channelBytes(parts []string) (r, g, b float64) {
	ch := [3]float64{math.NaN(), math.NaN(), math.NaN()}
	for i := 0; i < len(ch) && i < len(parts); i++ {
		ch[i] = parseIntPrefix(parts[i], 10) / 255
	}
	return ch[0], ch[1], ch[2]
}

// parseIntPrefix reads the longest leading integer in the given base,
// ignoring leading whitespace and any trailing garbage. No digits gives NaN.
func parseIntPrefix(s string, base int) float64 {
	s = strings.TrimLeft(s, " \t\n\r")
	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	end := 0
	for end < len(s) && digitValue(s[end]) < base {
		end++
	}
	if end == 0 {
		return math.NaN()
	}

	v, err := strconv.ParseInt(s[:end], base, 64)
	if err != nil {
		return math.NaN()
	}
	return sign * float64(v)
}

func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return 99
}

var floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseFloatPrefix is the float counterpart of parseIntPrefix.
func parseFloatPrefix(s string) float64 {
	m := floatPrefix.FindString(strings.TrimLeft(s, " \t\n\r"))
	if m == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
