package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitList splits a comma/semicolon/newline separated string into trimmed,
// non-empty parts, keeping their order.
func SplitList(raw string) []string {
	out := []string{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		p = NormalizeSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
