package ratelimit

import (
	"net"
	"net/http"
	"strconv"
)

// Middleware rejects requests over the limit by calling onLimited, which
// must write the response. Allowed requests get X-RateLimit-* headers.
func Middleware(l *Limiter, onLimited func(http.ResponseWriter, *http.Request, Info)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, info := l.Allow(ClientID(r), r.URL.Path, r.Method)
			SetHeaders(w, info)
			if !allowed {
				if info.RetryAfter > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(max(int(info.RetryAfter.Seconds()), 1)))
				}
				onLimited(w, r, info)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientID identifies the caller by remote IP. X-Forwarded-For is ignored
// because it is client-controlled without a trusted proxy in front.
func ClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// SetHeaders sets standard rate limit headers on the response.
func SetHeaders(w http.ResponseWriter, info Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}
