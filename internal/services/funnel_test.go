package services

import "testing"

func TestBuildFunnelStages(t *testing.T) {
	records := []*SurveyResponse{
		{
			SocialMediaShopping:    "yes",
			VirtualTryOn:           "very-interested",
			ImageUploadWillingness: "yes-upload",
			PurchaseConfidence:     "much-more-likely",
		},
		{
			SocialMediaShopping: "no",
			VirtualTryOn:        "interested",
		},
		{
			SocialMediaShopping: "sometimes-social",
		},
		{},
	}
	got := BuildFunnel(records)
	if len(got) != 5 {
		t.Fatalf("expected 5 stages, got %d", len(got))
	}
	wantNames := []string{"awareness", "interest", "consideration", "intent", "action"}
	wantCounts := []int{3, 2, 2, 1, 1}
	for i, s := range got {
		if s.Stage != wantNames[i] {
			t.Fatalf("stage %d: expected %q, got %q", i, wantNames[i], s.Stage)
		}
		if s.Count != wantCounts[i] {
			t.Fatalf("stage %s: expected count %d, got %d", s.Stage, wantCounts[i], s.Count)
		}
		if s.Percentage != Percent(wantCounts[i], len(records)) {
			t.Fatalf("stage %s: unexpected percentage %d", s.Stage, s.Percentage)
		}
	}
}

// Stage predicates are evaluated independently, so a later stage may hold
// more respondents than an earlier one.
func TestBuildFunnelStagesIndependent(t *testing.T) {
	records := []*SurveyResponse{
		{PurchaseConfidence: "very-confident"},
		{PurchaseConfidence: "confident"},
		{SocialMediaShopping: "rarely"},
	}
	got := BuildFunnel(records)
	byStage := map[string]int{}
	for _, s := range got {
		byStage[s.Stage] = s.Count
	}
	if byStage["action"] != 2 || byStage["awareness"] != 1 {
		t.Fatalf("unexpected stage counts: %v", byStage)
	}
	if byStage["action"] <= byStage["awareness"] {
		t.Fatalf("expected a non-monotonic funnel in this fixture: %v", byStage)
	}
}

func TestBuildFunnelEmpty(t *testing.T) {
	got := BuildFunnel(nil)
	if len(got) != 5 {
		t.Fatalf("expected the full stage list even when empty, got %d", len(got))
	}
	for _, s := range got {
		if s.Count != 0 || s.Percentage != 0 {
			t.Fatalf("expected zeroed stage, got %+v", s)
		}
	}
}
