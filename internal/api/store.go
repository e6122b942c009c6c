package api

import (
	"strings"
	"sync"

	"github.com/stylemirror/tryon-survey/internal/services"
)

// memoryStore keeps everything in process memory. Responses are append-only
// and listed in insertion order, which is also the collection order the
// analytics engine sees.
type memoryStore struct {
	mu           sync.RWMutex
	responses    []*services.SurveyResponse
	responseByID map[string]*services.SurveyResponse
	usersByEmail map[string]*services.User
}

// NewMemoryStore returns an empty in-memory Store.
func NewMemoryStore() Store {
	return newMemoryStore()
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		responseByID: map[string]*services.SurveyResponse{},
		usersByEmail: map[string]*services.User{},
	}
}

func (s *memoryStore) AddResponse(r *services.SurveyResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, r)
	s.responseByID[r.ID] = r
}

func (s *memoryStore) GetResponse(id string) *services.SurveyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.responseByID[id]
}

func (s *memoryStore) ListResponses() []*services.SurveyResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*services.SurveyResponse(nil), s.responses...)
}

func (s *memoryStore) CountResponses() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.responses)
}

func (s *memoryStore) AddUser(u *services.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usersByEmail[strings.ToLower(u.Email)] = u
}

func (s *memoryStore) FindUserByEmail(email string) *services.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.usersByEmail[strings.ToLower(email)]
}
