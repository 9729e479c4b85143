package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"crewhub/core/cache"
	"crewhub/core/controller"
	"crewhub/core/errors"
	"crewhub/core/logger"
	"crewhub/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const ContextKeyUserID = "user_id"

// Middleware bundles the cross-cutting echo middlewares.
type Middleware struct {
	cache cache.CacheInterface

	limiterMu sync.Mutex
	limiters  map[string]*ipLimiter
	rateLimit rate.Limit
	burst     int

	done      chan struct{}
	closeOnce sync.Once
}

type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

func NewMiddleware(c cache.CacheInterface, perSec int, burst int) *Middleware {
	mw := &Middleware{
		cache:     c,
		limiters:  make(map[string]*ipLimiter),
		rateLimit: rate.Limit(perSec),
		burst:     burst,
		done:      make(chan struct{}),
	}
	go mw.cleanupLoop()
	return mw
}

// Close stops the limiter cleanup goroutine. Safe to call more than once.
func (m *Middleware) Close() {
	m.closeOnce.Do(func() { close(m.done) })
}

// AuthMiddleware validates the Bearer token, rejects blacklisted tokens and
// stores the user id in the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrMissingAuthorizationHeader, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrInvalidTokenFormat, "invalid token format")
			}
			token := parts[1]

			if m.cache != nil {
				blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:AuthMiddleware:IsTokenBlacklisted", err)
				} else if blacklisted {
					return controller.NewErrorResponse(http.StatusUnauthorized,
						errors.ErrUnauthorized, "token is blacklisted")
				}
			}

			tokenData, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrTokenExpired, "invalid or expired token")
			}
			if tokenData.TokenType != utils.TokenTypeAccess {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrInvalidTokenFormat, "not an access token")
			}

			c.Set(ContextKeyUserID, tokenData.UserID)
			return next(c)
		}
	}
}

// RateLimitMiddleware applies a per-IP token bucket.
func (m *Middleware) RateLimitMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := m.getOrCreateLimiter(c.RealIP())
			if !limiter.Allow() {
				logger.Warn("rate limit exceeded", "ip", c.RealIP())
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}

// UserID extracts the authenticated user id from the request context.
func UserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "user not authenticated", nil)
	}
	return id, nil
}

func (m *Middleware) getOrCreateLimiter(ip string) *rate.Limiter {
	m.limiterMu.Lock()
	defer m.limiterMu.Unlock()

	if l, ok := m.limiters[ip]; ok {
		l.lastAccess = time.Now()
		return l.limiter
	}

	l := &ipLimiter{
		limiter:    rate.NewLimiter(m.rateLimit, m.burst),
		lastAccess: time.Now(),
	}
	m.limiters[ip] = l
	return l.limiter
}

func (m *Middleware) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.evictIdle()
		}
	}
}

func (m *Middleware) evictIdle() {
	m.limiterMu.Lock()
	defer m.limiterMu.Unlock()

	for ip, l := range m.limiters {
		if time.Since(l.lastAccess) > 10*time.Minute {
			delete(m.limiters, ip)
		}
	}
}
