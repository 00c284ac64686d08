package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/api/data", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/api/data", "GET", 200, 30*time.Millisecond)
	m.RecordError("/api/data", "GET", "FORBIDDEN")

	s := m.Snapshot()
	assert.Equal(t, int64(2), s.Requests["/api/data|GET|200"])
	assert.Equal(t, int64(20), s.AverageLatencyMS["/api/data|GET|200"])
	assert.Equal(t, int64(1), s.Errors["/api/data|GET|FORBIDDEN"])
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Empty(t, m.Snapshot().Requests)
}
