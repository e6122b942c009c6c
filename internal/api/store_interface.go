package api

import "github.com/stylemirror/tryon-survey/internal/services"

// Store is the persistence surface the API needs: append-only survey
// responses plus admin accounts. Both the in-memory store and the SQLite
// store in internal/db implement it.
type Store interface {
	AddResponse(r *services.SurveyResponse)
	GetResponse(id string) *services.SurveyResponse
	ListResponses() []*services.SurveyResponse
	CountResponses() int

	AddUser(u *services.User)
	FindUserByEmail(email string) *services.User
}
