package services

import "math"

// MarketConfig holds the tunable assumptions behind the market-size chain.
// Each response stands in for RespondentMultiplier real-world users; revenue
// projects SOM through AverageOrderValue and ConversionRate.
type MarketConfig struct {
	RespondentMultiplier int     `json:"respondent_multiplier"`
	AverageOrderValue    float64 `json:"average_order_value"`
	ConversionRate       float64 `json:"conversion_rate"`
}

// DefaultMarketConfig returns the product owner's baseline assumptions.
func DefaultMarketConfig() MarketConfig {
	return MarketConfig{RespondentMultiplier: 1000, AverageOrderValue: 75, ConversionRate: 0.03}
}

// MarketEstimate is the TAM/SAM/SOM chain plus a revenue projection. This is
// a rough heuristic over fixed constants, not a statistical model; the only
// guarantee is deterministic, reproducible arithmetic.
type MarketEstimate struct {
	TAM                   int `json:"tam"`
	SAM                   int `json:"sam"`
	SOM                   int `json:"som"`
	PotentialRevenue      int `json:"potential_revenue"`
	ConversionOpportunity int `json:"conversion_opportunity"`
}

// EstimateMarket derives the market-size chain from the response set.
func EstimateMarket(records []*SurveyResponse, cfg MarketConfig) MarketEstimate {
	serviceable := 0
	obtainable := 0
	for _, r := range records {
		if Positive(r.SocialMediaShopping) || r.OnlineShoppingFrequency != "" {
			serviceable++
		}
		if Positive(r.VirtualTryOn) && Positive(r.ImageUploadWillingness) {
			obtainable++
		}
	}
	est := MarketEstimate{
		TAM: len(records) * cfg.RespondentMultiplier,
		SAM: serviceable * cfg.RespondentMultiplier,
		SOM: obtainable * cfg.RespondentMultiplier,
	}
	est.PotentialRevenue = int(math.Round(float64(est.SOM) * cfg.AverageOrderValue * cfg.ConversionRate))
	est.ConversionOpportunity = Percent(est.SOM, est.TAM)
	return est
}
