// Package survey holds the static question bank for the virtual try-on
// market research study: question text, answer enums, required flags, and the
// branching rules that decide which questions a respondent sees. The
// analytics engine never consults this package; it only sees final-state
// response records.
package survey

type QuestionType string

const (
	TypeRadio    QuestionType = "radio"
	TypeCheckbox QuestionType = "checkbox"
	TypeSelect   QuestionType = "select"
)

// Option is one legal answer value with its display label.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Answers maps question IDs to the single-valued answers collected so far.
// Branching conditions only ever inspect single-valued questions.
type Answers map[string]string

// Question is one node of the declarative survey tree. Condition, when set,
// gates visibility on earlier answers; a nil Condition means always visible.
type Question struct {
	ID          string          `json:"id"`
	Text        string          `json:"text"`
	Description string          `json:"description,omitempty"`
	Type        QuestionType    `json:"type"`
	Options     []Option        `json:"options"`
	Required    bool            `json:"required,omitempty"`
	Multi       bool            `json:"multi,omitempty"`
	Condition   func(Answers) bool `json:"-"`
}

// ValidValue reports whether v is one of the question's legal enum values.
func (q Question) ValidValue(v string) bool {
	for _, opt := range q.Options {
		if opt.Value == v {
			return true
		}
	}
	return false
}

var questions = []Question{
	// Phase 1: demographics and shopping behavior.
	{
		ID: "age", Text: "What is your age group?", Type: TypeSelect, Required: true,
		Options: []Option{
			{ID: "under-18", Label: "Under 18", Value: "under-18"},
			{ID: "18-24", Label: "18-24", Value: "18-24"},
			{ID: "25-34", Label: "25-34", Value: "25-34"},
			{ID: "35-44", Label: "35-44", Value: "35-44"},
			{ID: "45-54", Label: "45-54", Value: "45-54"},
			{ID: "55-64", Label: "55-64", Value: "55-64"},
			{ID: "65-over", Label: "65 and over", Value: "65-over"},
		},
	},
	{
		ID: "gender", Text: "How do you identify? (Optional)",
		Description: "This helps us understand diversity in our user base",
		Type:        TypeRadio,
		Options: []Option{
			{ID: "male", Label: "Male", Value: "male"},
			{ID: "female", Label: "Female", Value: "female"},
			{ID: "non-binary", Label: "Non-binary", Value: "non-binary"},
			{ID: "prefer-not", Label: "Prefer not to say", Value: "prefer-not-to-say"},
		},
	},
	{
		ID: "shoppingPreference", Text: "How do you prefer to shop for clothes?", Type: TypeRadio, Required: true,
		Options: []Option{
			{ID: "mostly-online", Label: "Mostly online", Value: "mostly-online"},
			{ID: "mostly-in-store", Label: "Mostly in-store", Value: "mostly-in-store"},
			{ID: "equal", Label: "Equally online and in-store", Value: "equal"},
		},
	},
	{
		ID: "onlineShoppingFrequency", Text: "How often do you shop for clothes online?", Type: TypeSelect, Required: true,
		Options: []Option{
			{ID: "daily", Label: "Multiple times a week", Value: "daily"},
			{ID: "2-3-weekly", Label: "2-3 times a week", Value: "2-3-weekly"},
			{ID: "once-week", Label: "About once a week", Value: "once-week"},
			{ID: "2-3-monthly", Label: "2-3 times a month", Value: "2-3-monthly"},
			{ID: "monthly", Label: "Once a month", Value: "monthly"},
			{ID: "few-times-year", Label: "Few times a year", Value: "few-times-year"},
		},
	},

	// Phase 2: online shopping experience and social media discovery.
	{
		ID: "findClothes", Text: "Where do you typically discover clothes to buy?",
		Description: "Select the most common sources",
		Type:        TypeRadio, Required: true,
		Options: []Option{
			{ID: "brand-retail", Label: "Brand/retailer websites (Zara, H&M, etc.)", Value: "brand-retail"},
			{ID: "social-media", Label: "Social media (Instagram, TikTok, Pinterest)", Value: "social-media"},
			{ID: "indie-indie", Label: "Independent/indie brands & emerging designers", Value: "indie-indie"},
			{ID: "marketplace", Label: "Marketplace platforms (Amazon, Etsy, etc.)", Value: "marketplace"},
			{ID: "mixed", Label: "Mix of all the above", Value: "mixed"},
		},
	},
	{
		ID: "socialMediaShopping", Text: "Do you buy clothes that you see on social media?", Type: TypeRadio,
		Options: []Option{
			{ID: "yes-social", Label: "Yes, regularly", Value: "yes-social"},
			{ID: "sometimes-social", Label: "Yes, but occasionally", Value: "sometimes-social"},
			{ID: "no-social", Label: "No", Value: "no-social"},
		},
	},
	{
		ID: "socialMediaPlatforms", Text: "Which platforms do you find clothes on?",
		Description: "Select all that apply",
		Type:        TypeCheckbox, Multi: true,
		Condition: func(a Answers) bool {
			return a["socialMediaShopping"] == "yes-social" || a["socialMediaShopping"] == "sometimes-social"
		},
		Options: []Option{
			{ID: "instagram", Label: "Instagram", Value: "instagram"},
			{ID: "tiktok", Label: "TikTok", Value: "tiktok"},
			{ID: "pinterest", Label: "Pinterest", Value: "pinterest"},
			{ID: "youtube", Label: "YouTube", Value: "youtube"},
			{ID: "facebook", Label: "Facebook", Value: "facebook"},
			{ID: "twitch", Label: "Twitch", Value: "twitch"},
			{ID: "other-social", Label: "Other platforms", Value: "other-social"},
		},
	},
	{
		ID: "clothesFit", Text: "When you shop online, how confident are you that items will fit?", Type: TypeRadio,
		Options: []Option{
			{ID: "very-confident", Label: "Very confident - items usually fit right", Value: "very-confident-fit"},
			{ID: "somewhat-confident", Label: "Somewhat confident - hit or miss", Value: "somewhat-confident-fit"},
			{ID: "not-confident", Label: "Not confident - often mis-fit", Value: "not-confident-fit"},
		},
	},
	{
		ID: "returnsProblem", Text: "How often do you return or exchange items due to poor fit or color mismatch?", Type: TypeSelect,
		Options: []Option{
			{ID: "very-often", Label: "Very often (more than 50% of orders)", Value: "very-often"},
			{ID: "often", Label: "Often (25-50% of orders)", Value: "often"},
			{ID: "sometimes", Label: "Sometimes (10-25% of orders)", Value: "sometimes"},
			{ID: "rarely", Label: "Rarely (less than 10%)", Value: "rarely"},
			{ID: "never", Label: "Never - items fit great", Value: "never"},
		},
	},
	{
		ID: "misSizedItems", Text: "Which item types are most often the problem?", Type: TypeSelect,
		Condition: func(a Answers) bool {
			v := a["returnsProblem"]
			return v == "very-often" || v == "often" || v == "sometimes"
		},
		Options: []Option{
			{ID: "jeans", Label: "Jeans/Trousers", Value: "jeans"},
			{ID: "shirts", Label: "Shirts/Tops", Value: "shirts"},
			{ID: "jackets", Label: "Jackets/Coats", Value: "jackets"},
			{ID: "dresses", Label: "Dresses", Value: "dresses"},
			{ID: "skirts", Label: "Skirts", Value: "skirts"},
			{ID: "multiple", Label: "Multiple types equally", Value: "multiple"},
		},
	},
	{
		ID: "trustIssues", Text: "When buying from indie brands or social media, what concerns you most?",
		Description: "Select all that apply",
		Type:        TypeCheckbox, Multi: true,
		Condition: func(a Answers) bool {
			v := a["findClothes"]
			return v == "indie-indie" || v == "social-media" || v == "mixed"
		},
		Options: []Option{
			{ID: "quality", Label: "Quality might not match photos", Value: "quality"},
			{ID: "fit-unknown", Label: "Unknown sizing standards", Value: "fit-unknown"},
			{ID: "color-diff", Label: "Color might look different in person", Value: "color-diff"},
			{ID: "no-returns", Label: "Difficult or impossible returns", Value: "no-returns"},
			{ID: "scam", Label: "Fear of scams or fraud", Value: "scam"},
		},
	},
	{
		ID: "colorMatchingUncertainty", Text: "How often does the color in product photos not match what arrives?", Type: TypeSelect, Required: true,
		Options: []Option{
			{ID: "almost-always", Label: "Almost always - very different", Value: "almost-always"},
			{ID: "often", Label: "Often - noticeably different", Value: "often"},
			{ID: "occasionally", Label: "Occasionally - slightly off", Value: "occasionally"},
			{ID: "rarely", Label: "Rarely - usually matches", Value: "rarely"},
			{ID: "never", Label: "Never - always matches photos", Value: "never"},
		},
	},

	// Phase 3: virtual try-on and the MVP solution.
	{
		ID: "imageUploadWillingness", Text: "Would you upload any clothing image (from social media, website, or anywhere) to try it on your own body virtually?",
		Description: "This is the core idea of our app",
		Type:        TypeRadio,
		Options: []Option{
			{ID: "yes-upload", Label: "Yes, absolutely - sounds really helpful!", Value: "yes-upload"},
			{ID: "maybe-upload", Label: "Maybe - depends on how accurate it is", Value: "maybe-upload"},
			{ID: "no-upload", Label: "No - I prefer traditional shopping", Value: "no-upload"},
		},
	},
	{
		ID: "tryOnFromSocialMedia", Text: "How likely are you to buy an item you found on social media if you could try it on first?", Type: TypeRadio,
		Condition: func(a Answers) bool {
			v := a["imageUploadWillingness"]
			return v == "yes-upload" || v == "maybe-upload"
		},
		Options: []Option{
			{ID: "much-more", Label: "Much more likely - I'd buy way more", Value: "much-more-likely"},
			{ID: "somewhat-more", Label: "Somewhat more likely", Value: "somewhat-more-likely"},
			{ID: "no-difference", Label: "No difference to my buying habits", Value: "no-difference"},
		},
	},
	{
		ID: "tryOnUseFrequency", Text: "How often would you use a virtual try-on tool if it were available?", Type: TypeRadio,
		Condition: func(a Answers) bool { return a["imageUploadWillingness"] == "yes-upload" },
		Options: []Option{
			{ID: "every-purchase", Label: "For every online purchase", Value: "every-purchase"},
			{ID: "most-purchases", Label: "For most online purchases", Value: "most-purchases"},
			{ID: "occasional", Label: "Occasionally for uncertain items", Value: "occasional"},
			{ID: "rarely", Label: "Rarely - just for fun sometimes", Value: "rarely"},
		},
	},
	{
		ID: "tryOnBodyType", Text: "How important is it that the try-on accurately represents your body shape and size?", Type: TypeRadio,
		Condition: func(a Answers) bool { return a["imageUploadWillingness"] == "yes-upload" },
		Options: []Option{
			{ID: "critical-body", Label: "Critical - I need to see how it fits my body", Value: "critical-body"},
			{ID: "important-body", Label: "Important, but general fit is enough", Value: "important-body"},
			{ID: "nice-body", Label: "Nice to have, but not necessary", Value: "nice-body"},
		},
	},
	{
		ID: "tryOnConcerns", Text: "What concerns you most about uploading personal photos for virtual try-ons?",
		Description: "Select all that apply",
		Type:        TypeCheckbox, Multi: true,
		Condition: func(a Answers) bool { return a["imageUploadWillingness"] == "yes-upload" },
		Options: []Option{
			{ID: "privacy", Label: "Privacy - where are my photos stored?", Value: "privacy"},
			{ID: "accuracy", Label: "Accuracy - will the fit prediction be correct?", Value: "accuracy"},
			{ID: "embarrassment", Label: "Embarrassment - showing my body online", Value: "embarrassment"},
			{ID: "data-misuse", Label: "Data misuse - could my photos be used elsewhere?", Value: "data-misuse"},
			{ID: "none", Label: "No major concerns", Value: "none"},
		},
	},
	{
		ID: "speedExpectation", Text: "What's an acceptable wait time to see a try-on result after uploading an image?", Type: TypeRadio, Required: true,
		Options: []Option{
			{ID: "instant", Label: "Instant (less than 5 seconds)", Value: "instant"},
			{ID: "quick", Label: "Quick (5-30 seconds)", Value: "quick"},
			{ID: "moderate", Label: "Moderate (30-60 seconds)", Value: "moderate"},
			{ID: "patient", Label: "I can wait (1-2 minutes)", Value: "patient"},
		},
	},
	{
		ID: "skinToneAccuracy", Text: "How important is it that the try-on accurately shows how clothes look on your skin tone?", Type: TypeRadio, Required: true,
		Options: []Option{
			{ID: "critical", Label: "Critical - dealbreaker if not accurate", Value: "critical"},
			{ID: "important", Label: "Important, but I'd still use it if not perfect", Value: "important"},
			{ID: "nice-to-have", Label: "Nice to have, but not essential", Value: "nice-to-have"},
		},
	},
	{
		ID: "virtualTryOn", Text: "Have you ever used AR or virtual try-on tools from brands or apps?", Type: TypeRadio, Required: true,
		Options: []Option{
			{ID: "yes", Label: "Yes", Value: "yes"},
			{ID: "no", Label: "No", Value: "no"},
		},
	},
	{
		ID: "arRealism", Text: "How realistic and accurate were those try-on results?", Type: TypeRadio,
		Condition: func(a Answers) bool { return a["virtualTryOn"] == "yes" },
		Options: []Option{
			{ID: "very-realistic", Label: "Very realistic and accurate", Value: "matched-well"},
			{ID: "somewhat-realistic", Label: "Somewhat realistic but not perfect", Value: "close"},
			{ID: "not-realistic", Label: "Not realistic or helpful", Value: "not-accurate"},
		},
	},
	{
		ID: "purchaseConfidence", Text: "How likely are you to actually use an app like this if it existed?", Type: TypeRadio, Required: true,
		Options: []Option{
			{ID: "very-likely", Label: "Very likely - I would use it regularly", Value: "very-confident"},
			{ID: "somewhat-likely", Label: "Somewhat likely - would try it", Value: "somewhat-confident"},
			{ID: "unlikely", Label: "Unlikely - not for me", Value: "not-confident"},
		},
	},
}

// Questions returns the full bank in presentation order. Callers must treat
// the slice as read-only.
func Questions() []Question {
	return questions
}

// ByID looks up a question by its identifier.
func ByID(id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// VisibleQuestions filters the bank down to the questions a respondent with
// the given answers should currently see.
func VisibleQuestions(a Answers) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil || q.Condition(a) {
			out = append(out, q)
		}
	}
	return out
}
