package services

import (
	"math"
	"sort"
	"strings"
)

// DistributionBucket is one category row of a count/percentage table.
// Category is the raw grouping key (the stored enum value); Label is a
// presentation-only transform and never participates in grouping.
type DistributionBucket struct {
	Category   string `json:"category"`
	Label      string `json:"label"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// Percent computes round(100*count/total), defined as 0 for an empty total.
func Percent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(count) / float64(total)))
}

// DisplayLabel renders an enum token for charts ("yes-upload" -> "yes upload").
func DisplayLabel(category string) string {
	return strings.ReplaceAll(category, "-", " ")
}

// Distribution counts records grouped by a single-valued field. Records whose
// selected value is empty are excluded from the table; a selector may map
// absence to a sentinel label (the age selector does) to count it instead.
// Buckets appear in first-seen order; percentages are computed against the
// full record count, not the answered count.
func Distribution(records []*SurveyResponse, field func(*SurveyResponse) string) []DistributionBucket {
	total := len(records)
	index := map[string]int{}
	out := []DistributionBucket{}
	for _, r := range records {
		v := field(r)
		if v == "" {
			continue
		}
		i, ok := index[v]
		if !ok {
			i = len(out)
			index[v] = i
			out = append(out, DistributionBucket{Category: v, Label: DisplayLabel(v)})
		}
		out[i].Count++
	}
	for i := range out {
		out[i].Percentage = Percent(out[i].Count, total)
	}
	return out
}

// MultiDistribution counts every element of a list-valued field independently;
// a record listing three platforms increments three buckets, so counts may
// sum past the record count.
func MultiDistribution(records []*SurveyResponse, field func(*SurveyResponse) []string) []DistributionBucket {
	total := len(records)
	index := map[string]int{}
	out := []DistributionBucket{}
	for _, r := range records {
		for _, v := range field(r) {
			if v == "" {
				continue
			}
			i, ok := index[v]
			if !ok {
				i = len(out)
				index[v] = i
				out = append(out, DistributionBucket{Category: v, Label: DisplayLabel(v)})
			}
			out[i].Count++
		}
	}
	for i := range out {
		out[i].Percentage = Percent(out[i].Count, total)
	}
	return out
}

// TopN sorts a distribution descending by count and truncates to n entries.
// Ties keep their first-seen order so output stays deterministic.
func TopN(buckets []DistributionBucket, n int) []DistributionBucket {
	out := append([]DistributionBucket(nil), buckets...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
