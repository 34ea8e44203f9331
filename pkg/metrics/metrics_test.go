package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("booking-test", prometheus.NewRegistry())

	m.ObserveLogin("pending")
	m.ObserveLogin("rejected")
	m.ObserveLogin("rejected")
	m.ObserveConfirmation("venue")
	m.SetActiveSessions(3)
	m.ObserveHTTP(http.MethodGet, "/api/v1/resources", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginAttemptsTotal.WithLabelValues("pending")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.LoginAttemptsTotal.WithLabelValues("rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsConfirmedTotal.WithLabelValues("venue")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveSessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/resources", "200")))
}
