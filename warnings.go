package statvec

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/statvec/engine"
)

// warningLog forwards warnings to an optional reporter and logs them,
// at most once per interval.
type warningLog struct {
	logger     *Logger
	next       engine.Reporter
	sometimes  *rate.Sometimes
	suppressed atomic.Int64
}

func newWarningLog(logger *Logger, next engine.Reporter, interval time.Duration) *warningLog {
	s := &rate.Sometimes{Every: 1}
	if interval > 0 {
		s = &rate.Sometimes{First: 1, Interval: interval}
	}
	return &warningLog{logger: logger, next: next, sometimes: s}
}

// Warn implements engine.Reporter.
func (w *warningLog) Warn(x engine.Warning) {
	if w.next != nil {
		w.next.Warn(x)
	}
	logged := false
	w.sometimes.Do(func() {
		logged = true
		w.logger.LogWarning(context.Background(), x, w.suppressed.Swap(0))
	})
	if !logged {
		w.suppressed.Add(1)
	}
}

// Suppressed returns the number of warnings not logged since the last logged one.
func (w *warningLog) Suppressed() int64 { return w.suppressed.Load() }
