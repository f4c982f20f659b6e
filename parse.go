package cssfilter

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseColor parses a hex color (#rrggbb, #rgb, with or without the '#')
// or a CSS/SVG color name such as "crimson". Names are case-insensitive.
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}

	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if n := len(hex); n != 4 && n != 7 {
		return RGB{}, fmt.Errorf("%w %q: want 3 or 6 hex digits", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// FilterString parses s with ParseColor and returns FilterRGB for it.
func FilterString(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return FilterRGB(c.R, c.G, c.B), nil
}

// ColorNames returns the sorted list of color names ParseColor accepts.
func ColorNames() []string {
	return append([]string(nil), colornames.Names...)
}
