package services

import (
	"regexp"
	"strconv"
	"strings"
)

// AgeUnknown is returned for absent or unparseable age answers.
const AgeUnknown = "Unknown"

// AgeBucketLabels is the fixed presentation order of age buckets.
var AgeBucketLabels = []string{"<18", "18-24", "25-34", "35-44", "45-54", "55-64", "65+", AgeUnknown}

// canonicalAgeBuckets maps the question bank's age tokens straight to bucket
// labels. The three upper bands stay distinct, matching the bank's options.
var canonicalAgeBuckets = map[string]string{
	"under-18": "<18",
	"18-24":    "18-24",
	"25-34":    "25-34",
	"35-44":    "35-44",
	"45-54":    "45-54",
	"55-64":    "55-64",
	"65-over":  "65+",
}

var ageRangePattern = regexp.MustCompile(`(\d{1,3})\s*-\s*(\d{1,3})`)

// AgeBucket normalizes a raw age answer into one of the fixed bucket labels.
// Canonical tokens map directly; otherwise a numeric range buckets by its
// lower bound, then any embedded integer is tried. Anything else degrades to
// AgeUnknown. Never panics.
func AgeBucket(age string) string {
	v := strings.ToLower(strings.TrimSpace(age))
	if v == "" {
		return AgeUnknown
	}
	if label, ok := canonicalAgeBuckets[v]; ok {
		return label
	}
	if m := ageRangePattern.FindStringSubmatch(v); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return ageBand(n)
		}
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, v)
	if digits != "" {
		if n, err := strconv.Atoi(digits); err == nil {
			return ageBand(n)
		}
	}
	return AgeUnknown
}

func ageBand(n int) string {
	switch {
	case n < 18:
		return "<18"
	case n < 25:
		return "18-24"
	case n < 35:
		return "25-34"
	case n < 45:
		return "35-44"
	case n < 55:
		return "45-54"
	case n < 65:
		return "55-64"
	default:
		return "65+"
	}
}
