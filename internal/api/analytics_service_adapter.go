package api

import "github.com/stylemirror/tryon-survey/internal/services"

type analyticsStoreAdapter struct {
	store Store
}

func newAnalyticsStoreAdapter(store Store) services.AnalyticsStore {
	return &analyticsStoreAdapter{store: store}
}

func (a *analyticsStoreAdapter) ListResponses() ([]*services.SurveyResponse, error) {
	return a.store.ListResponses(), nil
}

var _ services.AnalyticsStore = (*analyticsStoreAdapter)(nil)
