package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordDraw("remote")
	c.RecordDraw("remote")
	c.RecordDraw("local")
	c.RecordDrawRejected("already_drawn")
	c.RecordRemoteFallback()
	c.RecordHTTPRequest("POST /api/draws/daily", 201, 42*time.Millisecond)
	c.RecordInterpretation("success")

	assert.Equal(t, float64(2), testutil.ToFloat64(c.draws.WithLabelValues("remote")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.draws.WithLabelValues("local")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.drawRejections.WithLabelValues("already_drawn")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.remoteFallbacks))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(c.httpRequests.WithLabelValues("POST /api/draws/daily", "201")))

	// All metric families are registered and gatherable.
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)
}

func TestCollectorRegistersOnce(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	NewCollector(reg)
	assert.Panics(t, func() { NewCollector(reg) }, "duplicate registration must panic")
}
