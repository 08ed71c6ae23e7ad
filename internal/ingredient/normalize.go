package ingredient

import "strings"

// Normalize converts raw free-text input into canonical ingredient tokens.
// Fragments are split on commas and newlines, trimmed, and lowercased; empty
// fragments are discarded. Order is preserved and duplicates are kept — set
// construction is the caller's concern.
func Normalize(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// NewSet collapses a token list into a set.
func NewSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
