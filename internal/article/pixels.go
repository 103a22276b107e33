package article

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePixels reads a CSS pixel length such as "1394px".
func ParsePixels(length string) (int, error) {
	trimmed := strings.TrimSpace(length)
	number, ok := strings.CutSuffix(trimmed, "px")
	if !ok {
		return 0, fmt.Errorf("length %q: missing px unit", length)
	}
	value, err := strconv.Atoi(number)
	if err != nil {
		return 0, fmt.Errorf("length %q: %w", length, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("length %q: must be positive", length)
	}
	return value, nil
}
