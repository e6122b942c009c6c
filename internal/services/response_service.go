package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stylemirror/tryon-survey/internal/survey"
)

// ResponseStore abstracts the persistence operations the submission workflow
// needs.
type ResponseStore interface {
	AddResponse(r *SurveyResponse) error
}

// SubmitRequest carries one respondent's answers into the service layer.
// Field names mirror the question bank IDs.
type SubmitRequest struct {
	Age                      string   `json:"age,omitempty"`
	Gender                   string   `json:"gender,omitempty"`
	ShoppingPreference       string   `json:"shopping_preference,omitempty"`
	OnlineShoppingFrequency  string   `json:"online_shopping_frequency,omitempty"`
	FindClothes              string   `json:"find_clothes,omitempty"`
	SocialMediaShopping      string   `json:"social_media_shopping,omitempty"`
	SocialMediaPlatforms     []string `json:"social_media_platforms,omitempty"`
	ClothesFit               string   `json:"clothes_fit,omitempty"`
	ReturnsProblem           string   `json:"returns_problem,omitempty"`
	MisSizedItems            string   `json:"mis_sized_items,omitempty"`
	TrustIssues              []string `json:"trust_issues,omitempty"`
	ColorMatchingUncertainty string   `json:"color_matching_uncertainty,omitempty"`
	ImageUploadWillingness   string   `json:"image_upload_willingness,omitempty"`
	TryOnFromSocialMedia     string   `json:"try_on_from_social_media,omitempty"`
	TryOnUseFrequency        string   `json:"try_on_use_frequency,omitempty"`
	TryOnBodyType            string   `json:"try_on_body_type,omitempty"`
	TryOnConcerns            []string `json:"try_on_concerns,omitempty"`
	SpeedExpectation         string   `json:"speed_expectation,omitempty"`
	SkinToneAccuracy         string   `json:"skin_tone_accuracy,omitempty"`
	VirtualTryOn             string   `json:"virtual_try_on,omitempty"`
	ARRealism                string   `json:"ar_realism,omitempty"`
	PurchaseConfidence       string   `json:"purchase_confidence,omitempty"`
	UserAgent                string   `json:"user_agent,omitempty"`
}

// ResponseService hosts the survey submission workflow. Validation happens
// here, at the write boundary; the analytics engine tolerates whatever is
// already stored.
type ResponseService struct {
	store ResponseStore
	now   func() time.Time
	idGen func() string
}

// NewResponseService constructs a service bound to the provided store.
func NewResponseService(store ResponseStore) *ResponseService {
	return &ResponseService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: func() string { return shortUID(12) },
	}
}

func shortUID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}

// Submit validates the answers against the question bank, stamps identity and
// completion time, and persists the record. The stored record is immutable
// from this point on.
func (s *ResponseService) Submit(req SubmitRequest) (*SurveyResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	now := s.now()
	r := &SurveyResponse{
		ID:          s.idGen(),
		CreatedAt:   now,
		CompletedAt: now,

		Age:                     strings.TrimSpace(req.Age),
		Gender:                  strings.TrimSpace(req.Gender),
		ShoppingPreference:      strings.TrimSpace(req.ShoppingPreference),
		OnlineShoppingFrequency: strings.TrimSpace(req.OnlineShoppingFrequency),

		FindClothes:              strings.TrimSpace(req.FindClothes),
		SocialMediaShopping:      strings.TrimSpace(req.SocialMediaShopping),
		SocialMediaPlatforms:     trimAll(req.SocialMediaPlatforms),
		ClothesFit:               strings.TrimSpace(req.ClothesFit),
		ReturnsProblem:           strings.TrimSpace(req.ReturnsProblem),
		MisSizedItems:            strings.TrimSpace(req.MisSizedItems),
		TrustIssues:              trimAll(req.TrustIssues),
		ColorMatchingUncertainty: strings.TrimSpace(req.ColorMatchingUncertainty),

		ImageUploadWillingness: strings.TrimSpace(req.ImageUploadWillingness),
		TryOnFromSocialMedia:   strings.TrimSpace(req.TryOnFromSocialMedia),
		TryOnUseFrequency:      strings.TrimSpace(req.TryOnUseFrequency),
		TryOnBodyType:          strings.TrimSpace(req.TryOnBodyType),
		TryOnConcerns:          trimAll(req.TryOnConcerns),
		SpeedExpectation:       strings.TrimSpace(req.SpeedExpectation),
		SkinToneAccuracy:       strings.TrimSpace(req.SkinToneAccuracy),
		VirtualTryOn:           strings.TrimSpace(req.VirtualTryOn),
		ARRealism:              strings.TrimSpace(req.ARRealism),
		PurchaseConfidence:     strings.TrimSpace(req.PurchaseConfidence),

		UserAgent: req.UserAgent,
	}
	if err := s.store.AddResponse(r); err != nil {
		return nil, err
	}
	return r, nil
}

func trimAll(vs []string) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (s *ResponseService) validate(req SubmitRequest) error {
	single := req.singleAnswers()
	multi := map[string][]string{
		"socialMediaPlatforms": req.SocialMediaPlatforms,
		"trustIssues":          req.TrustIssues,
		"tryOnConcerns":        req.TryOnConcerns,
	}
	for _, q := range survey.Questions() {
		if q.Multi {
			for _, v := range trimAll(multi[q.ID]) {
				if !q.ValidValue(v) {
					return NewInvalidError("unknown value for " + q.ID)
				}
			}
			continue
		}
		v := strings.TrimSpace(single[q.ID])
		if v == "" {
			if q.Required {
				return NewInvalidError(q.ID + " is required")
			}
			continue
		}
		if !q.ValidValue(v) {
			return NewInvalidError("unknown value for " + q.ID)
		}
	}
	return nil
}

func (req SubmitRequest) singleAnswers() survey.Answers {
	return survey.Answers{
		"age":                      req.Age,
		"gender":                   req.Gender,
		"shoppingPreference":       req.ShoppingPreference,
		"onlineShoppingFrequency":  req.OnlineShoppingFrequency,
		"findClothes":              req.FindClothes,
		"socialMediaShopping":      req.SocialMediaShopping,
		"clothesFit":               req.ClothesFit,
		"returnsProblem":           req.ReturnsProblem,
		"misSizedItems":            req.MisSizedItems,
		"colorMatchingUncertainty": req.ColorMatchingUncertainty,
		"imageUploadWillingness":   req.ImageUploadWillingness,
		"tryOnFromSocialMedia":     req.TryOnFromSocialMedia,
		"tryOnUseFrequency":        req.TryOnUseFrequency,
		"tryOnBodyType":            req.TryOnBodyType,
		"speedExpectation":         req.SpeedExpectation,
		"skinToneAccuracy":         req.SkinToneAccuracy,
		"virtualTryOn":             req.VirtualTryOn,
		"arRealism":                req.ARRealism,
		"purchaseConfidence":       req.PurchaseConfidence,
	}
}
