package services

import "testing"

func TestPositiveLexicon(t *testing.T) {
	positives := []string{
		"yes-upload", "maybe-upload",
		"yes-social", "sometimes-social",
		"very-confident", "confident",
		"very-interested", "interested",
		"much-more-likely", "somewhat-more-likely",
		"yes", "definitely", "very-willing", "willing",
		"extremely-important", "very-important", "important",
		"online-only", "online-primarily", "both-equally",
	}
	for _, v := range positives {
		if !Positive(v) {
			t.Fatalf("expected %q to be positive", v)
		}
	}
}

func TestPositiveNegatives(t *testing.T) {
	negatives := []string{
		"", "no", "no-upload", "no-social", "not-confident",
		"somewhat-confident", "no-difference", "unknown-value",
	}
	for _, v := range negatives {
		if Positive(v) {
			t.Fatalf("expected %q to be negative", v)
		}
	}
}

// Exact match must not fall for values that merely contain a positive token.
func TestPositiveNoSubstringMatch(t *testing.T) {
	for _, v := range []string{"not-confident-fit", "very-confident-fit", "yes-and-no"} {
		if Positive(v) {
			t.Fatalf("substring-looking value %q must not classify positive", v)
		}
	}
}

func TestPositiveNormalizes(t *testing.T) {
	if !Positive("YES-UPLOAD") {
		t.Fatalf("classification should be case-insensitive")
	}
	if !Positive("  yes  ") {
		t.Fatalf("classification should trim whitespace")
	}
}

func TestPositiveStable(t *testing.T) {
	for i := 0; i < 3; i++ {
		if !Positive("very-confident") || Positive("not-confident") {
			t.Fatalf("classification changed between calls")
		}
	}
}
