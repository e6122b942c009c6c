package services

// FunnelStage is one step of the notional adoption journey.
type FunnelStage struct {
	Stage      string `json:"stage"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// BuildFunnel computes the five journey stages. Each stage is an independent
// predicate counted against the full record set, presented in canonical
// order; it is not a narrowing filter chain, so a later stage may exceed an
// earlier one.
func BuildFunnel(records []*SurveyResponse) []FunnelStage {
	total := len(records)
	stages := []struct {
		name  string
		match func(*SurveyResponse) bool
	}{
		{"awareness", func(r *SurveyResponse) bool { return r.SocialMediaShopping != "" }},
		{"interest", func(r *SurveyResponse) bool { return Positive(r.SocialMediaShopping) }},
		{"consideration", func(r *SurveyResponse) bool { return Positive(r.VirtualTryOn) }},
		{"intent", func(r *SurveyResponse) bool { return Positive(r.ImageUploadWillingness) }},
		{"action", func(r *SurveyResponse) bool { return Positive(r.PurchaseConfidence) }},
	}
	out := make([]FunnelStage, 0, len(stages))
	for _, st := range stages {
		count := 0
		for _, r := range records {
			if st.match(r) {
				count++
			}
		}
		out = append(out, FunnelStage{Stage: st.name, Count: count, Percentage: Percent(count, total)})
	}
	return out
}
