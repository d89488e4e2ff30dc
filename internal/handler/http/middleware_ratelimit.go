package http

import (
	"net"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"golang.org/x/time/rate"
)

// addressLimiter keeps one token bucket per client address. A nil
// *addressLimiter allows everything.
type addressLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter

	limit rate.Limit
	burst int
}

// newAddressLimiter returns nil when limit or burst is not positive, which
// disables rate limiting.
func newAddressLimiter(limit float64, burst int) *addressLimiter {
	if limit <= 0 || burst <= 0 {
		return nil
	}
	return &addressLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(limit),
		burst:    burst,
	}
}

func (l *addressLimiter) allow(address string) bool {
	if l == nil {
		return true
	}

	l.mu.Lock()
	limiter, ok := l.limiters[address]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[address] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// rateLimit throttles account creation and login per client address.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address := clientAddress(r)
		if !h.limiter.allow(address) {
			logger.FromRequest(r).Warn().Str("address", address).Msg("rate limit exceeded")
			utils.WriteError(w, http.StatusTooManyRequests, models.ErrorTypeGeneralRateLimit, app.MsgRateLimitExceeded)
			return
		}

		next.ServeHTTP(w, r)
	})
}
