package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siris-blog/trace"
)

func TestNewAppliesDefaultTimeout(t *testing.T) {
	client := New(Config{})
	assert.Equal(t, DefaultTimeout, client.Timeout)

	client = New(Config{Timeout: 3 * time.Second})
	assert.Equal(t, 3*time.Second, client.Timeout)
}

func TestRoundTripPropagatesTraceHeaders(t *testing.T) {
	var gotRequestID, gotSpanID, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(trace.HeaderRequestID)
		gotSpanID = r.Header.Get(trace.HeaderSpanID)
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(Config{Timeout: 2 * time.Second, UserAgent: "siris-blog-test"})
	ctx := trace.WithRequestAndSpan(context.Background(), "req-42", 0)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "req-42", gotRequestID)
	assert.Equal(t, "1", gotSpanID)
	assert.Equal(t, "siris-blog-test", gotUA)
	assert.Empty(t, req.Header.Get(trace.HeaderRequestID), "caller request must not be mutated")
}

func TestRoundTripTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(Config{Timeout: 100 * time.Millisecond})
	_, err := client.Get(server.URL)
	assert.Error(t, err)
}
