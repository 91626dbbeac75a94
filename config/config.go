package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const DefaultDBPath = "file:morafo?mode=memory&cache=shared"

type AppConfig struct {
	Port          string
	DBPath        string
	GeminiAPIKey  string
	GeminiModel   string
	SuppliersFile string
	StaticDir     string
	RatePerMinute int
	LogLevel      string
	AllowOrigins  []string
}

// Load reads .env (if present) and then the process environment.
func Load(log *zap.Logger) AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded", zap.Error(err))
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	rate, err := strconv.Atoi(get("RATE_LIMIT_PER_MIN", "30"))
	if err != nil || rate < 0 {
		rate = 30
	}
	cfg := AppConfig{
		Port:          get("PORT", "8080"),
		DBPath:        get("DB_PATH", DefaultDBPath),
		GeminiAPIKey:  get("GEMINI_API_KEY", get("API_KEY", os.Getenv("VITE_API_KEY"))),
		GeminiModel:   get("GEMINI_MODEL", "gemini-2.5-flash"),
		SuppliersFile: get("SUPPLIERS_FILE", ""),
		StaticDir:     get("STATIC_DIR", "static"),
		RatePerMinute: rate,
		LogLevel:      get("LOG_LEVEL", "info"),
		AllowOrigins:  splitList(get("ALLOWED_ORIGINS", "*")),
	}
	log.Info("config loaded",
		zap.String("port", cfg.Port),
		zap.String("db_path", cfg.DBPath),
		zap.Bool("gemini", cfg.GeminiAPIKey != ""),
		zap.String("model", cfg.GeminiModel),
		zap.String("suppliers_file", cfg.SuppliersFile),
		zap.Int("rate_per_min", cfg.RatePerMinute),
	)
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
