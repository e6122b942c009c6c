package services

import "time"

// SurveyResponse is one completed survey submission. Every answer field is
// optional; an empty string (or nil slice) means the question was not
// answered, either because the respondent skipped it or because the question
// bank's branching never showed it.
//
// Records are write-once: the submission workflow creates them and nothing in
// this package mutates or deletes them afterwards.
type SurveyResponse struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at"`

	// Phase 1: demographics and shopping behavior.
	Age                     string `json:"age,omitempty"`
	Gender                  string `json:"gender,omitempty"`
	ShoppingPreference      string `json:"shopping_preference,omitempty"`
	OnlineShoppingFrequency string `json:"online_shopping_frequency,omitempty"`

	// Phase 2: online shopping experience and pain points.
	FindClothes              string   `json:"find_clothes,omitempty"`
	SocialMediaShopping      string   `json:"social_media_shopping,omitempty"`
	SocialMediaPlatforms     []string `json:"social_media_platforms,omitempty"`
	ClothesFit               string   `json:"clothes_fit,omitempty"`
	ReturnsProblem           string   `json:"returns_problem,omitempty"`
	MisSizedItems            string   `json:"mis_sized_items,omitempty"`
	TrustIssues              []string `json:"trust_issues,omitempty"`
	ColorMatchingUncertainty string   `json:"color_matching_uncertainty,omitempty"`

	// Phase 3: virtual try-on attitudes.
	ImageUploadWillingness string   `json:"image_upload_willingness,omitempty"`
	TryOnFromSocialMedia   string   `json:"try_on_from_social_media,omitempty"`
	TryOnUseFrequency      string   `json:"try_on_use_frequency,omitempty"`
	TryOnBodyType          string   `json:"try_on_body_type,omitempty"`
	TryOnConcerns          []string `json:"try_on_concerns,omitempty"`
	SpeedExpectation       string   `json:"speed_expectation,omitempty"`
	SkinToneAccuracy       string   `json:"skin_tone_accuracy,omitempty"`
	VirtualTryOn           string   `json:"virtual_try_on,omitempty"`
	ARRealism              string   `json:"ar_realism,omitempty"`
	PurchaseConfidence     string   `json:"purchase_confidence,omitempty"`

	// Diagnostic metadata, never aggregated.
	UserAgent string `json:"user_agent,omitempty"`
}

// User is an admin dashboard account.
type User struct {
	ID        string
	Email     string
	PassHash  []byte
	CreatedAt time.Time
}
