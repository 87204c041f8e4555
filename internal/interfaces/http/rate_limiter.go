package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"golang.org/x/time/rate"

	"github.com/jhoicas/fieldstock-api/internal/application/dto"
)

const (
	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 10000
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limitador token-bucket por IP de cliente.
type RateLimiter struct {
	ips   map[string]*ipLimiter
	mu    sync.Mutex
	rate  rate.Limit
	burst int
}

// NewRateLimiter crea un limitador con perMinute peticiones por minuto y ráfaga burst.
// perMinute <= 0 desactiva el límite.
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	r := rate.Inf
	if perMinute > 0 {
		r = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{ips: make(map[string]*ipLimiter), rate: r, burst: burst}
}

// Allow consume un token para ip.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, ok := rl.ips[ip]
	if !ok {
		if len(rl.ips) >= limiterSweepSize {
			rl.sweep(now)
		}
		entry = &ipLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.ips[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.Allow()
}

// sweep descarta IPs inactivas; se llama con mu tomado.
func (rl *RateLimiter) sweep(now time.Time) {
	for ip, e := range rl.ips {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(rl.ips, ip)
		}
	}
}

// Middleware responde 429 RATE_LIMITED cuando la IP agotó su cupo.
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !rl.Allow(utils.CopyString(c.IP())) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiados intentos, espere un momento"})
		}
		return c.Next()
	}
}
