package metrics

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter_Concurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), 5*time.Millisecond)
}

func TestHTTP_Observe(t *testing.T) {
	h := NewHTTP()
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNotFound, http.StatusConflict, http.StatusInternalServerError} {
		h.Observe(status)
	}

	s := h.Snapshot()
	assert.Equal(t, uint64(5), s.Requests)
	assert.Equal(t, uint64(2), s.ClientErrors)
	assert.Equal(t, uint64(1), s.ServerErrors)
	assert.GreaterOrEqual(t, s.UptimeSeconds, int64(0))
}
