package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/stylemirror/tryon-survey/internal/logger"
	"github.com/stylemirror/tryon-survey/internal/middleware"
	"github.com/stylemirror/tryon-survey/internal/services"
	"github.com/stylemirror/tryon-survey/internal/survey"
)

type Router struct {
	store     Store
	log       *logger.Logger
	responses *services.ResponseService
	analytics *services.AnalyticsService
	auth      *services.AuthService
}

func NewRouter(store Store, market services.MarketConfig, log *logger.Logger) *Router {
	return &Router{
		store:     store,
		log:       log,
		responses: services.NewResponseService(newResponseStoreAdapter(store)),
		analytics: services.NewAnalyticsService(newAnalyticsStoreAdapter(store), market),
		auth:      services.NewAuthService(newAuthStoreAdapter(store), middleware.SignToken),
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/responses", rt.handleResponses)         // POST submit, GET list (admin)
	mux.HandleFunc("/api/metrics", rt.handleMetrics)             // GET (admin)
	mux.HandleFunc("/api/questions", rt.handleQuestions)         // GET
	mux.HandleFunc("/api/questions/visible", rt.handleVisible)   // POST
	mux.HandleFunc("/api/export", rt.handleExport)               // GET (admin)
	mux.HandleFunc("/api/auth/register", rt.handleRegister)      // POST
	mux.HandleFunc("/api/auth/login", rt.handleLogin)            // POST
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps service error codes onto HTTP status codes.
func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if se, ok := services.AsServiceError(err); ok {
		switch se.Code {
		case services.ErrorInvalid:
			status = http.StatusBadRequest
		case services.ErrorUnauthorized:
			status = http.StatusUnauthorized
		case services.ErrorForbidden:
			status = http.StatusForbidden
		case services.ErrorNotFound:
			status = http.StatusNotFound
		case services.ErrorConflict:
			status = http.StatusConflict
		}
	}
	http.Error(w, err.Error(), status)
}

func (rt *Router) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// POST /api/responses submits a completed survey; GET lists raw records for
// the admin dashboards.
func (rt *Router) handleResponses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req services.SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.UserAgent == "" {
			req.UserAgent = r.UserAgent()
		}
		resp, err := rt.responses.Submit(req)
		if err != nil {
			writeErr(w, err)
			return
		}
		rt.log.WithRequest(r).WithField("response_id", resp.ID).Info("survey response saved")
		writeJSON(w, map[string]any{"ok": true, "id": resp.ID})
	case http.MethodGet:
		if !rt.requireAdmin(w, r) {
			return
		}
		writeJSON(w, map[string]any{"responses": rt.store.ListResponses(), "total": rt.store.CountResponses()})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// GET /api/metrics recomputes the full derived-metrics snapshot.
func (rt *Router) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !rt.requireAdmin(w, r) {
		return
	}
	m, err := rt.analytics.Summary()
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, m)
}

// GET /api/questions returns the static question bank.
func (rt *Router) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]any{"questions": survey.Questions()})
}

// POST /api/questions/visible evaluates branching for a partial answer set.
func (rt *Router) handleVisible(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Answers survey.Answers `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"questions": survey.VisibleQuestions(req.Answers)})
}

// GET /api/export?format=csv|xlsx downloads raw responses or the metrics
// workbook.
func (rt *Router) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !rt.requireAdmin(w, r) {
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	stamp := time.Now().UTC().Format("2006-01-02")
	switch format {
	case "csv":
		b, err := services.ExportResponsesCSV(rt.store.ListResponses())
		if err != nil {
			writeErr(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=survey-responses-"+stamp+".csv")
		_, _ = w.Write(b)
	case "xlsx":
		m, err := rt.analytics.Summary()
		if err != nil {
			writeErr(w, err)
			return
		}
		b, err := services.ExportMetricsXLSX(m)
		if err != nil {
			writeErr(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=survey-metrics-"+stamp+".xlsx")
		_, _ = w.Write(b)
	default:
		http.Error(w, "unsupported format", http.StatusBadRequest)
	}
}

// POST /api/auth/register
func (rt *Router) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := rt.auth.Register(req.Email, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]any{"token": res.Token, "user_id": res.UserID})
}

// POST /api/auth/login
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := rt.auth.Login(req.Email, req.Password)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, map[string]any{"token": res.Token, "user_id": res.UserID})
}
