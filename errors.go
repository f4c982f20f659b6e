package cssfilter

import "errors"

// ErrInvalidColor is returned when a color string is neither a hex color
// nor a known color name.
var ErrInvalidColor = errors.New("cssfilter: invalid color")
