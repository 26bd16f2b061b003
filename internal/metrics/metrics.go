package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// HTTP counts served requests by outcome since the process started.
type HTTP struct {
	Requests     Counter
	ClientErrors Counter
	ServerErrors Counter
	uptime       *Timer
}

func NewHTTP() *HTTP {
	return &HTTP{uptime: StartTimer()}
}

// Observe records one finished request with its response status.
func (h *HTTP) Observe(status int) {
	h.Requests.Inc()
	switch {
	case status >= 500:
		h.ServerErrors.Inc()
	case status >= 400:
		h.ClientErrors.Inc()
	}
}

type Snapshot struct {
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Requests      uint64 `json:"requests"`
	ClientErrors  uint64 `json:"clientErrors"`
	ServerErrors  uint64 `json:"serverErrors"`
}

func (h *HTTP) Snapshot() Snapshot {
	return Snapshot{
		UptimeSeconds: int64(h.uptime.Duration().Seconds()),
		Requests:      h.Requests.Load(),
		ClientErrors:  h.ClientErrors.Load(),
		ServerErrors:  h.ServerErrors.Load(),
	}
}
