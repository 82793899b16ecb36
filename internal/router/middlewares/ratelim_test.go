package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	t.Parallel()

	rlcm, err := RateLimitController(RateLimiterConfig{MaxRPI: 2, Interval: time.Hour})
	require.NoError(t, err)
	h := rlcm(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(remoteAddr, xff string) int {
		r := httptest.NewRequest(http.MethodGet, "/status", nil)
		r.RemoteAddr = remoteAddr
		if xff != "" {
			r.Header.Set("X-Forwarded-For", xff)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, r)
		return rr.Code
	}

	require.Equal(t, http.StatusOK, call("10.0.0.1:1234", ""))
	require.Equal(t, http.StatusOK, call("10.0.0.1:4321", ""))
	require.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1234", ""))

	// Another client has its own budget.
	require.Equal(t, http.StatusOK, call("10.0.0.2:1234", ""))

	// The forwarded IP wins over the remote address.
	require.Equal(t, http.StatusOK, call("10.0.0.1:1234", "192.168.1.1, 10.0.0.1"))
	require.Equal(t, http.StatusOK, call("10.0.0.1:1234", "192.168.1.1"))
	require.Equal(t, http.StatusTooManyRequests, call("10.0.0.3:1234", "192.168.1.1"))
}

func TestExtractClientIP(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "bad-addr"
	_, err := extractClientIP(r)
	require.Error(t, err)

	r.Header.Set("X-Forwarded-For", " 1.2.3.4 ,5.6.7.8")
	ip, err := extractClientIP(r)
	require.NoError(t, err)
	require.Equal(t, "1.2.3.4", ip)
}
