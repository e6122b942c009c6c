package services

import "sort"

// AnalyticsStore abstracts the single read the metrics engine needs.
type AnalyticsStore interface {
	ListResponses() ([]*SurveyResponse, error)
}

// AnalyticsService recomputes DerivedMetrics from the raw response set on
// every call. Nothing derived is ever persisted or cached.
type AnalyticsService struct {
	store  AnalyticsStore
	market MarketConfig
}

func NewAnalyticsService(store AnalyticsStore, market MarketConfig) *AnalyticsService {
	return &AnalyticsService{store: store, market: market}
}

// Rate is a headline count with its share of all responses.
type Rate struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// DailyCount is one day of the submission timeseries, keyed by UTC date.
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// KeyRates are the overview-card numbers of the admin dashboards.
type KeyRates struct {
	UploadWilling     Rate `json:"upload_willing"`
	PurchaseConfident Rate `json:"purchase_confident"`
	SocialShoppers    Rate `json:"social_shoppers"`
	AdoptionCohort    Rate `json:"adoption_cohort"` // positive on both upload and confidence
}

// DerivedMetrics is the full analytics output for one response snapshot.
// Every value is a pure function of the input records; the structure holds no
// references back into them.
type DerivedMetrics struct {
	TotalResponses int      `json:"total_responses"`
	KeyRates       KeyRates `json:"key_rates"`

	AgeGroups                []DistributionBucket `json:"age_groups"`
	Gender                   []DistributionBucket `json:"gender"`
	ShoppingPreference       []DistributionBucket `json:"shopping_preference"`
	OnlineShoppingFrequency  []DistributionBucket `json:"online_shopping_frequency"`
	FindClothes              []DistributionBucket `json:"find_clothes"`
	ClothesFit               []DistributionBucket `json:"clothes_fit"`
	ReturnsProblem           []DistributionBucket `json:"returns_problem"`
	MisSizedItems            []DistributionBucket `json:"mis_sized_items"`
	ColorMatchingUncertainty []DistributionBucket `json:"color_matching_uncertainty"`
	PurchaseConfidence       []DistributionBucket `json:"purchase_confidence"`
	SpeedExpectation         []DistributionBucket `json:"speed_expectation"`
	SkinToneAccuracy         []DistributionBucket `json:"skin_tone_accuracy"`
	TryOnBodyType            []DistributionBucket `json:"try_on_body_type"`
	TryOnUseFrequency        []DistributionBucket `json:"try_on_use_frequency"`
	ARRealism                []DistributionBucket `json:"ar_realism"`
	SocialMediaPlatforms     []DistributionBucket `json:"social_media_platforms"`
	TrustIssues              []DistributionBucket `json:"trust_issues"`
	TopConcerns              []DistributionBucket `json:"top_concerns"`

	ResponsesByDay []DailyCount   `json:"responses_by_day"`
	Segments       Segmentation   `json:"segments"`
	Funnel         []FunnelStage  `json:"funnel"`
	Market         MarketEstimate `json:"market"`
}

// topConcernsLimit caps the "most mentioned concerns" chart.
const topConcernsLimit = 8

// Summary fetches the current snapshot and computes all metrics over it.
func (s *AnalyticsService) Summary() (*DerivedMetrics, error) {
	records, err := s.store.ListResponses()
	if err != nil {
		return nil, err
	}
	return ComputeAllMetrics(records, s.market), nil
}

// ComputeAllMetrics runs every aggregation component over one response
// collection. It is pure and deterministic: identical input yields identical
// output, and an empty collection degrades to zeros and empty tables.
func ComputeAllMetrics(records []*SurveyResponse, market MarketConfig) *DerivedMetrics {
	total := len(records)
	m := &DerivedMetrics{TotalResponses: total}

	uploadWilling, confident, social, adoption := 0, 0, 0, 0
	for _, r := range records {
		up := Positive(r.ImageUploadWillingness)
		conf := Positive(r.PurchaseConfidence)
		if up {
			uploadWilling++
		}
		if conf {
			confident++
		}
		if Positive(r.SocialMediaShopping) {
			social++
		}
		if up && conf {
			adoption++
		}
	}
	m.KeyRates = KeyRates{
		UploadWilling:     Rate{uploadWilling, Percent(uploadWilling, total)},
		PurchaseConfident: Rate{confident, Percent(confident, total)},
		SocialShoppers:    Rate{social, Percent(social, total)},
		AdoptionCohort:    Rate{adoption, Percent(adoption, total)},
	}

	// The age selector maps absence to the Unknown bucket; every other
	// distribution simply drops unanswered records.
	m.AgeGroups = Distribution(records, func(r *SurveyResponse) string { return AgeBucket(r.Age) })
	m.Gender = Distribution(records, func(r *SurveyResponse) string { return r.Gender })
	m.ShoppingPreference = Distribution(records, func(r *SurveyResponse) string { return r.ShoppingPreference })
	m.OnlineShoppingFrequency = Distribution(records, func(r *SurveyResponse) string { return r.OnlineShoppingFrequency })
	m.FindClothes = Distribution(records, func(r *SurveyResponse) string { return r.FindClothes })
	m.ClothesFit = Distribution(records, func(r *SurveyResponse) string { return r.ClothesFit })
	m.ReturnsProblem = Distribution(records, func(r *SurveyResponse) string { return r.ReturnsProblem })
	m.MisSizedItems = Distribution(records, func(r *SurveyResponse) string { return r.MisSizedItems })
	m.ColorMatchingUncertainty = Distribution(records, func(r *SurveyResponse) string { return r.ColorMatchingUncertainty })
	m.PurchaseConfidence = Distribution(records, func(r *SurveyResponse) string { return r.PurchaseConfidence })
	m.SpeedExpectation = Distribution(records, func(r *SurveyResponse) string { return r.SpeedExpectation })
	m.SkinToneAccuracy = Distribution(records, func(r *SurveyResponse) string { return r.SkinToneAccuracy })
	m.TryOnBodyType = Distribution(records, func(r *SurveyResponse) string { return r.TryOnBodyType })
	m.TryOnUseFrequency = Distribution(records, func(r *SurveyResponse) string { return r.TryOnUseFrequency })
	m.ARRealism = Distribution(records, func(r *SurveyResponse) string { return r.ARRealism })
	m.SocialMediaPlatforms = MultiDistribution(records, func(r *SurveyResponse) []string { return r.SocialMediaPlatforms })
	m.TrustIssues = MultiDistribution(records, func(r *SurveyResponse) []string { return r.TrustIssues })
	m.TopConcerns = TopN(MultiDistribution(records, func(r *SurveyResponse) []string { return r.TryOnConcerns }), topConcernsLimit)

	m.ResponsesByDay = buildTimeseries(records)
	m.Segments = Segment(records)
	m.Funnel = BuildFunnel(records)
	m.Market = EstimateMarket(records, market)
	return m
}

// buildTimeseries groups completions by UTC calendar day. UTC keeps the day
// key independent of the host timezone.
func buildTimeseries(records []*SurveyResponse) []DailyCount {
	counts := map[string]int{}
	for _, r := range records {
		day := r.CompletedAt.UTC().Format("2006-01-02")
		counts[day]++
	}
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)
	out := make([]DailyCount, 0, len(days))
	for _, d := range days {
		out = append(out, DailyCount{Date: d, Count: counts[d]})
	}
	return out
}
