package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
	"venuebook/pkg/logger"
)

type ClientExtractor func(r *http.Request) string

// ClientRateLimiter applies a sliding-window limit per client key
// (remote IP by default).
type ClientRateLimiter struct {
	mu        sync.RWMutex
	requests  map[string][]time.Time
	limit     int
	window    time.Duration
	extractor ClientExtractor
	log       *logger.Logger
	stopCh    chan struct{}
}

func NewClientRateLimiter(limit int, window time.Duration, extractor ClientExtractor, log *logger.Logger) *ClientRateLimiter {
	limiter := &ClientRateLimiter{
		requests:  make(map[string][]time.Time),
		limit:     limit,
		window:    window,
		extractor: extractor,
		log:       log,
		stopCh:    make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

func (rl *ClientRateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for client, timestamps := range rl.requests {
				if len(timestamps) == 0 || time.Since(timestamps[len(timestamps)-1]) > rl.window {
					delete(rl.requests, client)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *ClientRateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *ClientRateLimiter) Allow(client string) bool {
	if client == "" {
		return true
	}

	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	valid := rl.requests[client][:0]
	for _, ts := range rl.requests[client] {
		if now.Sub(ts) < rl.window {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[client] = valid
		return false
	}

	rl.requests[client] = append(valid, now)
	return true
}

func ClientRateLimit(limiter *ClientRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client := limiter.extractor(r)

			if !limiter.Allow(client) {
				limiter.log.Warn("Rate limit exceeded",
					"request_id", RequestID(r.Context()),
					"client", client,
					"path", r.URL.Path,
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"Rate limit exceeded"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RemoteIPExtractor keys requests by client IP, honoring the first
// entry of X-Forwarded-For when a proxy sits in front.
func RemoteIPExtractor(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
