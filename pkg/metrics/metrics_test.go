package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveProviderCountsOutcome(t *testing.T) {
	okBefore := testutil.ToFloat64(ProviderRequests.WithLabelValues("test", "ok"))
	errBefore := testutil.ToFloat64(ProviderRequests.WithLabelValues("test", "error"))

	var err error
	ObserveProvider("test", time.Now(), &err)
	err = errors.New("boom")
	ObserveProvider("test", time.Now(), &err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ProviderRequests.WithLabelValues("test", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(ProviderRequests.WithLabelValues("test", "error")))
}

func TestCacheCounters(t *testing.T) {
	before := testutil.ToFloat64(CacheLookups.WithLabelValues("weather", "hit"))
	CacheHit("weather")
	CacheMiss("weather")
	assert.Equal(t, before+1, testutil.ToFloat64(CacheLookups.WithLabelValues("weather", "hit")))
}
