package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

type stubAnalyticsStore struct {
	records []*SurveyResponse
	err     error
}

func (s *stubAnalyticsStore) ListResponses() ([]*SurveyResponse, error) {
	return s.records, s.err
}

func analyticsFixture() []*SurveyResponse {
	at := func(day int, hour int) time.Time {
		return time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC)
	}
	return []*SurveyResponse{
		{
			ID:                     "r1",
			CompletedAt:            at(1, 9),
			Age:                    "25-34",
			Gender:                 "female",
			SocialMediaShopping:    "yes",
			VirtualTryOn:           "very-interested",
			ImageUploadWillingness: "yes-upload",
			PurchaseConfidence:     "much-more-likely",
			SocialMediaPlatforms:   []string{"instagram", "tiktok"},
			TryOnConcerns:          []string{"privacy", "accuracy"},
		},
		{
			ID:                  "r2",
			CompletedAt:         at(1, 23),
			Age:                 "34-something",
			Gender:              "male",
			SocialMediaShopping: "no",
			VirtualTryOn:        "not-interested",
			TrustIssues:         []string{"privacy"},
		},
		{
			ID:                 "r3",
			CompletedAt:        at(3, 0),
			PurchaseConfidence: "very-confident",
		},
	}
}

func TestSummary(t *testing.T) {
	store := &stubAnalyticsStore{records: analyticsFixture()}
	svc := NewAnalyticsService(store, DefaultMarketConfig())

	m, err := svc.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if m.TotalResponses != 3 {
		t.Fatalf("TotalResponses = %d, want 3", m.TotalResponses)
	}
	if m.KeyRates.UploadWilling.Count != 1 || m.KeyRates.UploadWilling.Percentage != 33 {
		t.Fatalf("unexpected upload rate: %+v", m.KeyRates.UploadWilling)
	}
	if m.KeyRates.PurchaseConfident.Count != 2 || m.KeyRates.PurchaseConfident.Percentage != 67 {
		t.Fatalf("unexpected confidence rate: %+v", m.KeyRates.PurchaseConfident)
	}
	if m.KeyRates.SocialShoppers.Count != 1 {
		t.Fatalf("unexpected social rate: %+v", m.KeyRates.SocialShoppers)
	}
	if m.KeyRates.AdoptionCohort.Count != 1 {
		t.Fatalf("unexpected adoption cohort: %+v", m.KeyRates.AdoptionCohort)
	}
	// r2's free-text age lands in the 25-34 band with r1; r3 has no age
	if len(m.AgeGroups) != 2 {
		t.Fatalf("unexpected age groups: %+v", m.AgeGroups)
	}
	if m.AgeGroups[0].Category != "25-34" || m.AgeGroups[0].Count != 2 {
		t.Fatalf("unexpected first age bucket: %+v", m.AgeGroups[0])
	}
	if m.AgeGroups[1].Category != AgeUnknown || m.AgeGroups[1].Count != 1 {
		t.Fatalf("unexpected second age bucket: %+v", m.AgeGroups[1])
	}
	if len(m.TopConcerns) != 2 || m.TopConcerns[0].Category != "privacy" {
		t.Fatalf("unexpected top concerns: %+v", m.TopConcerns)
	}
}

func TestSummaryTimeseries(t *testing.T) {
	store := &stubAnalyticsStore{records: analyticsFixture()}
	svc := NewAnalyticsService(store, DefaultMarketConfig())

	m, err := svc.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	want := []DailyCount{{Date: "2026-03-01", Count: 2}, {Date: "2026-03-03", Count: 1}}
	if len(m.ResponsesByDay) != len(want) {
		t.Fatalf("unexpected timeseries: %+v", m.ResponsesByDay)
	}
	for i, d := range want {
		if m.ResponsesByDay[i] != d {
			t.Fatalf("day %d: got %+v, want %+v", i, m.ResponsesByDay[i], d)
		}
	}
}

// Day grouping must use the UTC date regardless of the timestamp's zone.
func TestSummaryTimeseriesUsesUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	records := []*SurveyResponse{
		// 2026-03-01 23:30 EST is 2026-03-02 04:30 UTC
		{CompletedAt: time.Date(2026, 3, 1, 23, 30, 0, 0, est)},
	}
	m := ComputeAllMetrics(records, DefaultMarketConfig())
	if len(m.ResponsesByDay) != 1 || m.ResponsesByDay[0].Date != "2026-03-02" {
		t.Fatalf("expected UTC day key, got %+v", m.ResponsesByDay)
	}
}

func TestComputeAllMetricsDeterministic(t *testing.T) {
	records := analyticsFixture()
	a, err := json.Marshal(ComputeAllMetrics(records, DefaultMarketConfig()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b, err := json.Marshal(ComputeAllMetrics(records, DefaultMarketConfig()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("metrics are not deterministic:\n%s\n%s", a, b)
	}
}

func TestComputeAllMetricsEmpty(t *testing.T) {
	m := ComputeAllMetrics(nil, DefaultMarketConfig())
	if m.TotalResponses != 0 {
		t.Fatalf("TotalResponses = %d, want 0", m.TotalResponses)
	}
	if m.KeyRates.UploadWilling.Percentage != 0 {
		t.Fatalf("expected zero rates, got %+v", m.KeyRates)
	}
	if len(m.AgeGroups) != 0 || len(m.ResponsesByDay) != 0 {
		t.Fatalf("expected empty tables, got %+v", m)
	}
	if len(m.Funnel) != 5 {
		t.Fatalf("funnel stage list must survive empty input: %+v", m.Funnel)
	}
}

func TestSummaryStoreError(t *testing.T) {
	store := &stubAnalyticsStore{err: errors.New("sqlite busy")}
	svc := NewAnalyticsService(store, DefaultMarketConfig())
	if _, err := svc.Summary(); err == nil {
		t.Fatalf("expected store error to surface")
	}
}
