package core

import (
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	HeaderRateLimitReset     = "X-RateLimit-Reset"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
)

// RateLimiter records when the hosting API quota window resets. A zero reset
// value means no limit is in effect. It never blocks; callers decide what to
// do once RateLimitedNow reports true.
type RateLimiter struct {
	resetAt atomic.Int64
	now     func() time.Time
}

// DefaultRateLimiter is shared by every updater in the process, since the API
// quota it models is shared too.
var DefaultRateLimiter = NewRateLimiter(time.Now)

func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{now: now}
}

// RateLimitedNow reports whether the quota is exhausted. Once the reset time
// has passed the stored value is cleared.
func (r *RateLimiter) RateLimitedNow() bool {
	reset := r.resetAt.Load()
	if reset == 0 {
		return false
	}
	if r.now().Unix() < reset {
		return true
	}
	r.resetAt.CompareAndSwap(reset, 0)
	return false
}

// RecordHeaders stores the reset timestamp carried by a rate-limited response
// and returns it. A missing or malformed header is stored as 0, which means
// requests may resume immediately.
func (r *RateLimiter) RecordHeaders(headers http.Header) int64 {
	reset := parseResetHeader(headers)
	r.resetAt.Store(reset)
	return reset
}

// ResetAt returns the stored reset timestamp, or 0 when unset.
func (r *RateLimiter) ResetAt() int64 {
	return r.resetAt.Load()
}

// WaitDuration returns how long until the stored reset time, never negative.
func (r *RateLimiter) WaitDuration() time.Duration {
	reset := r.resetAt.Load()
	if reset == 0 {
		return 0
	}
	wait := time.Unix(reset, 0).Sub(r.now())
	if wait < 0 {
		return 0
	}
	return wait
}

func parseResetHeader(headers http.Header) int64 {
	raw := strings.TrimSpace(headers.Get(HeaderRateLimitReset))
	if raw == "" {
		log.Warn().Str("header", HeaderRateLimitReset).Msg("rate limit response without reset header")
		return 0
	}
	reset, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || reset < 0 {
		log.Warn().Str("header", HeaderRateLimitReset).Str("value", raw).Msg("invalid rate limit reset header")
		return 0
	}
	return reset
}

// QuotaExhausted reports whether a response declares zero remaining calls.
// An absent header does not count as exhausted.
func QuotaExhausted(headers http.Header) bool {
	raw := strings.TrimSpace(headers.Get(HeaderRateLimitRemaining))
	if raw == "" {
		return false
	}
	remaining, err := strconv.Atoi(raw)
	return err == nil && remaining == 0
}
