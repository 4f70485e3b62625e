// Package validate holds the pure input checks used by order intake and
// seller uploads. No function here touches storage or the network.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone accepts an optional leading "+" followed by 10-15 digits,
// after stripping spaces and hyphens.
func Phone(s string) bool {
	s = strings.NewReplacer(" ", "", "-", "").Replace(s)
	return phoneRe.MatchString(s)
}

// Sanitize trims surrounding whitespace and truncates to max runes.
// It does not escape anything; storage uses parameterized queries.
func Sanitize(s string, max int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) > max {
		return string(r[:max])
	}
	return s
}
