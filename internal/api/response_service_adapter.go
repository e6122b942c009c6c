package api

import "github.com/stylemirror/tryon-survey/internal/services"

type responseStoreAdapter struct {
	store Store
}

func newResponseStoreAdapter(store Store) services.ResponseStore {
	return &responseStoreAdapter{store: store}
}

func (a *responseStoreAdapter) AddResponse(r *services.SurveyResponse) error {
	a.store.AddResponse(r)
	return nil
}

var _ services.ResponseStore = (*responseStoreAdapter)(nil)
