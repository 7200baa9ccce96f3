package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveHTTPRequest("POST", "/api/statuses/:id/like", 200, 15*time.Millisecond)
	c.ObserveHTTPRequest("POST", "/api/statuses/:id/like", 200, 5*time.Millisecond)
	c.RecordStatusMutation("status.liked")
	c.RecordUpdateConflict("like")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.httpRequests.WithLabelValues("POST", "/api/statuses/:id/like", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.statusMutations.WithLabelValues("status.liked")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.versionConflicts.WithLabelValues("like")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordStatusMutation("status.created")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `statusboard_status_mutations_total{action="status.created"} 1`))
}
