package mailer

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrQuotaExceeded is returned once the daily send limit is used up.
var ErrQuotaExceeded = errors.New("mail send quota exceeded")

// SendQuota paces outbound contact mail per minute and caps it per UTC day.
// Counters live in memory and reset on restart.
// A nil *SendQuota imposes no limit.
type SendQuota struct {
	mu sync.Mutex

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time

	now func() time.Time
}

// NewSendQuota returns nil when both limits are zero or negative.
func NewSendQuota(requestsPerMinute, requestsPerDay int) *SendQuota {
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}
	if requestsPerMinute < 0 {
		requestsPerMinute = 0
	}
	if requestsPerDay == 0 && requestsPerMinute == 0 {
		return nil
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &SendQuota{
		dailyLimit: requestsPerDay,
		interval:   interval,
		now:        time.Now,
	}
}

// Reserve takes one send slot.
// It waits for the per-minute pacing, bounded by ctx, and returns
// ErrQuotaExceeded without waiting once the daily limit is reached.
func (q *SendQuota) Reserve(ctx context.Context) error {
	if q == nil {
		return nil
	}
	for {
		q.mu.Lock()

		now := q.now().UTC()
		todayKey := now.Format("2006-01-02")
		if q.dayKey != todayKey {
			q.dayKey = todayKey
			q.usedToday = 0
		}

		if q.dailyLimit > 0 && q.usedToday >= q.dailyLimit {
			q.mu.Unlock()
			return ErrQuotaExceeded
		}

		var delay time.Duration
		if q.interval > 0 && !q.lastCall.IsZero() {
			delay = q.lastCall.Add(q.interval).Sub(now)
		}

		if delay <= 0 {
			q.usedToday++
			q.lastCall = now
			q.mu.Unlock()
			return nil
		}

		// Unlock while waiting, then re-evaluate.
		q.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Release returns the daily slot taken by the last Reserve of the current day.
// Pacing is not rewound.
func (q *SendQuota) Release() {
	if q == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.dayKey == q.now().UTC().Format("2006-01-02") && q.usedToday > 0 {
		q.usedToday--
	}
}
