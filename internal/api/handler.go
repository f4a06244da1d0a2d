package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/shiftcoach/shiftcoach/internal/bus"
	"github.com/shiftcoach/shiftcoach/internal/config"
	"github.com/shiftcoach/shiftcoach/internal/db"
	"github.com/shiftcoach/shiftcoach/internal/services"
)

const (
	authCookieName      = "shiftcoach_session"
	defaultAuthTokenTTL = 7 * 24 * time.Hour
	contextUserKey      = "current_user"
)

type Handler struct {
	db           *gorm.DB
	repositories *db.Repositories
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	authService    *services.AuthService
	rotaService    *services.RotaService
	sleepService   *services.SleepService
	signalsService *services.SignalsService

	events        *bus.Bus
	responseCache *responseCache
	loginLimiter  *ipRateLimiter
}

func NewHandler(database *gorm.DB, cfg config.Config, events *bus.Bus) (*Handler, error) {
	location, err := time.LoadLocation(cfg.Server.Timezone)
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		db:           database,
		repositories: db.NewRepositories(database),
		secretKey:    []byte(cfg.Auth.SecretKey),
		location:     location,
		cookieSecure: cfg.Auth.CookieSecure,
		events:       events,
		loginLimiter: newIPRateLimiter(cfg.Server.LoginRatePerSec, cfg.Server.LoginRateBurst),
	}

	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.rotaService = services.NewRotaService(
		handler.repositories.RotaWindows,
		handler.repositories.Overrides,
		events,
		location,
	)
	handler.sleepService = services.NewSleepService(handler.repositories.SleepLogs, events)
	handler.signalsService = services.NewSignalsService(handler.rotaService, handler.sleepService, location)
	handler.responseCache = newResponseCache(cfg.CacheTTL(), events)

	return handler, nil
}
