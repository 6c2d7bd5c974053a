// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
	"unicode"
)

// DedupeAndTrimLower trims and lowercases each element, dropping empties and
// duplicates. Order of first occurrence is preserved.
//
// Example:
//
//	DedupeAndTrimLower([]string{"  FOO ", "bar", "Foo"})
//	// Returns: []string{"foo", "bar"}
func DedupeAndTrimLower(values []string) []string {
	return DedupeAndTrimLowerFunc(values, nil)
}

// DedupeAndTrimLowerFunc is like DedupeAndTrimLower but also drops any
// normalized element for which keep returns false. A nil keep keeps all.
func DedupeAndTrimLowerFunc(values []string, keep func(string) bool) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		normalized := strings.ToLower(strings.TrimSpace(v))
		if normalized == "" {
			continue
		}
		if keep != nil && !keep(normalized) {
			continue
		}
		if _, ok := seen[normalized]; !ok {
			seen[normalized] = struct{}{}
			result = append(result, normalized)
		}
	}

	return result
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
