package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var started = time.Now()

// checker is one named dependency check. Only required checkers can fail the
// endpoint; the rest are reported.
type checker struct {
	name     string
	required bool
	run      func(ctx context.Context) check
}

type check struct {
	OK   bool   `json:"ok"`
	Err  string `json:"err,omitempty"`
	Mode string `json:"mode,omitempty"`
}

type HealthCtrl struct {
	checkers []checker
}

// NewHealthCtrl checks the session store and reports the inference mode
// ("gemini" or "offline"). Offline mode is degraded, not down.
func NewHealthCtrl(db *gorm.DB, aiMode string) *HealthCtrl {
	return &HealthCtrl{checkers: []checker{
		{name: "database", required: true, run: pingDB(db)},
		{name: "inference", run: func(context.Context) check {
			return check{OK: aiMode == "gemini", Mode: aiMode}
		}},
	}}
}

func pingDB(db *gorm.DB) func(ctx context.Context) check {
	return func(ctx context.Context) check {
		if db == nil {
			return failed(errors.New("gorm db is nil"))
		}
		sqlDB, err := db.DB()
		if err != nil {
			return failed(err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return failed(err)
		}
		return check{OK: true}
	}
}

func failed(err error) check { return check{Err: err.Error()} }

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	ok := true
	checks := make(map[string]check, len(h.checkers))
	for _, ck := range h.checkers {
		res := ck.run(ctx)
		checks[ck.name] = res
		if ck.required && !res.OK {
			ok = false
		}
	}

	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]any{
		"status":     map[string]bool{"ok": ok},
		"uptime_sec": int(time.Since(started).Seconds()),
		"checks":     checks,
		"time":       time.Now().Format(time.RFC3339),
	})
}
