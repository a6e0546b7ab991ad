package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultWindow is the fallback reporting window used when none is provided.
	DefaultWindow = "7d"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	dayUnitMap    = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseWindowDays parses a human-friendly day window (for example "7d", "4w",
// or "1w3d") and returns the total number of days along with a canonical,
// compact representation. When the input is empty, the default window of one
// week is used.
func ParseWindowDays(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		days, ok := dayUnitMap[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * days

		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must cover at least one day")
	}

	return total, FormatWindowDays(total), nil
}

// FormatWindowDays renders a day count using week/day tokens.
func FormatWindowDays(days int) string {
	if days <= 0 {
		return "0d"
	}
	var parts []string
	if weeks := days / 7; weeks > 0 {
		parts = append(parts, fmt.Sprintf("%dw", weeks))
		days -= weeks * 7
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	return strings.Join(parts, "")
}
