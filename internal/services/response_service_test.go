package services

import (
	"errors"
	"testing"
	"time"
)

type stubResponseStore struct {
	saved []*SurveyResponse
	err   error
}

func (s *stubResponseStore) AddResponse(r *SurveyResponse) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, r)
	return nil
}

func validSubmitRequest() SubmitRequest {
	return SubmitRequest{
		Age:                      "25-34",
		ShoppingPreference:       "mostly-online",
		OnlineShoppingFrequency:  "monthly",
		FindClothes:              "social-media",
		SocialMediaShopping:      "yes-social",
		SocialMediaPlatforms:     []string{"instagram", "tiktok"},
		ColorMatchingUncertainty: "often",
		ImageUploadWillingness:   "yes-upload",
		SpeedExpectation:         "quick",
		SkinToneAccuracy:         "important",
		VirtualTryOn:             "yes",
		PurchaseConfidence:       "very-confident",
	}
}

func newTestResponseService(store ResponseStore) *ResponseService {
	svc := NewResponseService(store)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	svc.idGen = func() string { return "resp00000001" }
	return svc
}

func TestSubmit(t *testing.T) {
	store := &stubResponseStore{}
	svc := newTestResponseService(store)

	got, err := svc.Submit(validSubmitRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.ID != "resp00000001" {
		t.Fatalf("unexpected id %q", got.ID)
	}
	want := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if !got.CreatedAt.Equal(want) || !got.CompletedAt.Equal(want) {
		t.Fatalf("unexpected timestamps: %v / %v", got.CreatedAt, got.CompletedAt)
	}
	if len(store.saved) != 1 || store.saved[0] != got {
		t.Fatalf("expected the record to be persisted")
	}
	if got.PurchaseConfidence != "very-confident" {
		t.Fatalf("unexpected stored answer %q", got.PurchaseConfidence)
	}
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	store := &stubResponseStore{}
	svc := newTestResponseService(store)

	req := validSubmitRequest()
	req.Age = "  25-34  "
	req.SocialMediaPlatforms = []string{" instagram ", "", "tiktok"}

	got, err := svc.Submit(req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.Age != "25-34" {
		t.Fatalf("age not trimmed: %q", got.Age)
	}
	if len(got.SocialMediaPlatforms) != 2 || got.SocialMediaPlatforms[0] != "instagram" {
		t.Fatalf("platform list not cleaned: %v", got.SocialMediaPlatforms)
	}
}

func TestSubmitMissingRequired(t *testing.T) {
	svc := newTestResponseService(&stubResponseStore{})

	req := validSubmitRequest()
	req.PurchaseConfidence = ""
	if _, err := svc.Submit(req); err == nil {
		t.Fatalf("expected validation error for missing required answer")
	} else if se, ok := AsServiceError(err); !ok || se.Code != ErrorInvalid {
		t.Fatalf("expected invalid error, got %v", err)
	}

	req = validSubmitRequest()
	req.Age = "   "
	if _, err := svc.Submit(req); err == nil {
		t.Fatalf("whitespace must not satisfy a required answer")
	}
}

func TestSubmitOptionalMayBeEmpty(t *testing.T) {
	svc := newTestResponseService(&stubResponseStore{})

	req := validSubmitRequest()
	req.Gender = ""
	req.SocialMediaShopping = ""
	req.SocialMediaPlatforms = nil
	if _, err := svc.Submit(req); err != nil {
		t.Fatalf("optional answers must be skippable: %v", err)
	}
}

func TestSubmitRejectsUnknownValues(t *testing.T) {
	svc := newTestResponseService(&stubResponseStore{})

	req := validSubmitRequest()
	req.SpeedExpectation = "warp-speed"
	if _, err := svc.Submit(req); err == nil {
		t.Fatalf("expected rejection of unknown enum value")
	}

	req = validSubmitRequest()
	req.SocialMediaPlatforms = []string{"instagram", "myspace"}
	if _, err := svc.Submit(req); err == nil {
		t.Fatalf("expected rejection of unknown checkbox value")
	}
}

func TestSubmitStoreError(t *testing.T) {
	svc := newTestResponseService(&stubResponseStore{err: errors.New("disk full")})
	if _, err := svc.Submit(validSubmitRequest()); err == nil {
		t.Fatalf("expected store error to surface")
	}
}
