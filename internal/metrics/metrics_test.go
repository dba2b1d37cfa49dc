package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveFetch("success", 120*time.Millisecond)
	m.ObserveFetch("fetch_error", time.Second)
	m.ObserveConversion("success")
	m.ObserveConversion("success")
	m.ObserveThemeToggle("light")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateFetchTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateFetchTotal.WithLabelValues("fetch_error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ConversionsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ThemeTogglesTotal.WithLabelValues("light")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RateFetchDuration))
}
