package services

import "strings"

// positiveLexicon enumerates every enum value, across all survey fields, that
// counts as a favorable answer. Classification is exact-match on the
// lowercased value: a substring check would misread "not-confident-fit" as
// containing "confident".
var positiveLexicon = map[string]struct{}{
	// image upload willingness
	"yes-upload":   {},
	"maybe-upload": {},
	// social media shopping
	"yes-social":       {},
	"sometimes-social": {},
	// purchase confidence
	"very-confident": {},
	"confident":      {},
	// try-on interest
	"very-interested": {},
	"interested":      {},
	// likelihood of buying after a social-media try-on
	"much-more-likely":     {},
	"somewhat-more-likely": {},
	// generic affirmatives
	"yes":          {},
	"definitely":   {},
	"very-willing": {},
	"willing":      {},
	// importance ratings
	"extremely-important": {},
	"very-important":      {},
	"important":           {},
	// shopping channel preference
	"online-only":      {},
	"online-primarily": {},
	"both-equally":     {},
}

// Positive reports whether a raw answer value carries favorable sentiment.
// Empty or unknown values are never positive; values outside the lexicon are
// treated as neutral, not as errors.
func Positive(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return false
	}
	_, ok := positiveLexicon[v]
	return ok
}
