package main

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"github.com/stylemirror/tryon-survey/internal/api"
	dbstore "github.com/stylemirror/tryon-survey/internal/db"
	"github.com/stylemirror/tryon-survey/internal/logger"
	"github.com/stylemirror/tryon-survey/internal/middleware"
	"github.com/stylemirror/tryon-survey/internal/services"
	"github.com/stylemirror/tryon-survey/internal/utils"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	addr := utils.SafeEnv("TRYON_ADDR", ":8080")
	commit := os.Getenv("TRYON_COMMIT")
	buildTime := os.Getenv("TRYON_BUILD_TIME")

	defaults := services.DefaultMarketConfig()
	market := services.MarketConfig{
		RespondentMultiplier: utils.SafeEnvInt("TRYON_RESPONDENT_MULTIPLIER", defaults.RespondentMultiplier),
		AverageOrderValue:    utils.SafeEnvFloat("TRYON_AVG_ORDER_VALUE", defaults.AverageOrderValue),
		ConversionRate:       utils.SafeEnvFloat("TRYON_CONVERSION_RATE", defaults.ConversionRate),
	}

	store := openStore(log)

	mux := http.NewServeMux()
	api.NewRouter(store, market, log).Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"name":       "TryOn Survey API",
			"commit":     commit,
			"build_time": buildTime,
		})
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	// Static survey frontend, when bundled alongside the API.
	if staticDir := os.Getenv("TRYON_STATIC_DIR"); staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	handler := middleware.NoStore(middleware.SecureHeaders(middleware.CORS(middleware.WithAuth(mux))))

	log.WithField("addr", addr).Info("tryon-survey server listening")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

// openStore picks SQLite persistence when TRYON_SQLITE_PATH is set and falls
// back to the in-memory store otherwise (useful for local development and
// tests; responses do not survive a restart).
func openStore(log *logger.Logger) api.Store {
	path := os.Getenv("TRYON_SQLITE_PATH")
	if path == "" {
		log.Info("using in-memory store")
		return api.NewMemoryStore()
	}
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		log.WithError(err).Fatal("open sqlite database")
	}
	if err := dbstore.RunMigrations(sqlDB); err != nil {
		log.WithError(err).Fatal("run migrations")
	}
	store, err := dbstore.NewStore(sqlDB, log)
	if err != nil {
		log.WithError(err).Fatal("init sqlite store")
	}
	log.WithField("path", path).Info("using sqlite store")
	return store
}
