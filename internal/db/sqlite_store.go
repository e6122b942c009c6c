package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stylemirror/tryon-survey/internal/api"
	"github.com/stylemirror/tryon-survey/internal/logger"
	"github.com/stylemirror/tryon-survey/internal/services"
)

// SQLiteStore persists survey responses and admin users in SQLite.
// List-valued answers are stored as JSON arrays in text columns; timestamps
// as RFC3339 UTC strings. It satisfies api.Store, whose write methods carry
// no error return, so failures are logged rather than propagated (matching
// the in-memory store's contract).
type SQLiteStore struct {
	db  *sql.DB
	log *logger.Logger
}

func NewSQLiteStore(db *sql.DB, log *logger.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db, log: log}, nil
}

// NewStore opens a migrated SQLite-backed api.Store.
func NewStore(db *sql.DB, log *logger.Logger) (api.Store, error) {
	return NewSQLiteStore(db, log)
}

func (s *SQLiteStore) logErr(prefix string, err error) {
	if err != nil {
		s.log.WithError(err).Error("sqlite store: " + prefix)
	}
}

func encodeList(vs []string) sql.NullString {
	if len(vs) == 0 {
		return sql.NullString{}
	}
	b, err := json.Marshal(vs)
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

func decodeList(ns sql.NullString) []string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		return nil
	}
	return out
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

const responseColumns = `id, created_at, completed_at,
age, gender, shopping_preference, online_shopping_frequency,
find_clothes, social_media_shopping, social_media_platforms,
clothes_fit, returns_problem, mis_sized_items, trust_issues,
color_matching_uncertainty,
image_upload_willingness, try_on_from_social_media, try_on_use_frequency,
try_on_body_type, try_on_concerns, speed_expectation, skin_tone_accuracy,
virtual_try_on, ar_realism, purchase_confidence, user_agent`

func (s *SQLiteStore) AddResponse(r *services.SurveyResponse) {
	_, err := s.db.Exec(`INSERT INTO survey_responses (`+responseColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		r.ID, encodeTime(r.CreatedAt), encodeTime(r.CompletedAt),
		r.Age, r.Gender, r.ShoppingPreference, r.OnlineShoppingFrequency,
		r.FindClothes, r.SocialMediaShopping, encodeList(r.SocialMediaPlatforms),
		r.ClothesFit, r.ReturnsProblem, r.MisSizedItems, encodeList(r.TrustIssues),
		r.ColorMatchingUncertainty,
		r.ImageUploadWillingness, r.TryOnFromSocialMedia, r.TryOnUseFrequency,
		r.TryOnBodyType, encodeList(r.TryOnConcerns), r.SpeedExpectation, r.SkinToneAccuracy,
		r.VirtualTryOn, r.ARRealism, r.PurchaseConfidence, r.UserAgent,
	)
	s.logErr("add response", err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResponse(row rowScanner) (*services.SurveyResponse, error) {
	var r services.SurveyResponse
	var created, completed string
	var platforms, trust, concerns sql.NullString
	err := row.Scan(
		&r.ID, &created, &completed,
		&r.Age, &r.Gender, &r.ShoppingPreference, &r.OnlineShoppingFrequency,
		&r.FindClothes, &r.SocialMediaShopping, &platforms,
		&r.ClothesFit, &r.ReturnsProblem, &r.MisSizedItems, &trust,
		&r.ColorMatchingUncertainty,
		&r.ImageUploadWillingness, &r.TryOnFromSocialMedia, &r.TryOnUseFrequency,
		&r.TryOnBodyType, &concerns, &r.SpeedExpectation, &r.SkinToneAccuracy,
		&r.VirtualTryOn, &r.ARRealism, &r.PurchaseConfidence, &r.UserAgent,
	)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = decodeTime(created)
	r.CompletedAt = decodeTime(completed)
	r.SocialMediaPlatforms = decodeList(platforms)
	r.TrustIssues = decodeList(trust)
	r.TryOnConcerns = decodeList(concerns)
	return &r, nil
}

func (s *SQLiteStore) GetResponse(id string) *services.SurveyResponse {
	row := s.db.QueryRow(`SELECT `+responseColumns+` FROM survey_responses WHERE id = ?`, id)
	r, err := scanResponse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		s.logErr("get response", err)
		return nil
	}
	return r
}

func (s *SQLiteStore) ListResponses() []*services.SurveyResponse {
	rows, err := s.db.Query(`SELECT ` + responseColumns + ` FROM survey_responses ORDER BY rowid`)
	if err != nil {
		s.logErr("list responses", err)
		return nil
	}
	defer rows.Close()
	out := []*services.SurveyResponse{}
	for rows.Next() {
		r, err := scanResponse(rows)
		if err != nil {
			s.logErr("scan response", err)
			continue
		}
		out = append(out, r)
	}
	s.logErr("list responses rows", rows.Err())
	return out
}

func (s *SQLiteStore) CountResponses() int {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM survey_responses`).Scan(&n)
	if err != nil {
		s.logErr("count responses", err)
		return 0
	}
	return n
}

func (s *SQLiteStore) AddUser(u *services.User) {
	_, err := s.db.Exec(`INSERT INTO users (id, email, pass_hash, created_at) VALUES (?,?,?,?)`,
		u.ID, u.Email, u.PassHash, encodeTime(u.CreatedAt))
	s.logErr("add user", err)
}

func (s *SQLiteStore) FindUserByEmail(email string) *services.User {
	row := s.db.QueryRow(`SELECT id, email, pass_hash, created_at FROM users WHERE email = ? COLLATE NOCASE`, email)
	var u services.User
	var created string
	err := row.Scan(&u.ID, &u.Email, &u.PassHash, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		s.logErr("find user", err)
		return nil
	}
	u.CreatedAt = decodeTime(created)
	return &u
}

var _ api.Store = (*SQLiteStore)(nil)
