package serve

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/icon.png":
			_, _ = w.Write([]byte("pixels"))
		case "/huge.png":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		case "/slow.png":
			select {
			case <-time.After(time.Second):
			case <-r.Context().Done():
			}
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	fetcher := NewHTTPFetcher(100*time.Millisecond, 32)

	data, err := fetcher.Fetch(context.Background(), ts.URL+"/icon.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("pixels"), data)

	for name, rawURL := range map[string]string{
		"not found":   ts.URL + "/missing.png",
		"too large":   ts.URL + "/huge.png",
		"timeout":     ts.URL + "/slow.png",
		"bad scheme":  "file:///etc/passwd",
		"invalid url": "http://[::1",
	} {
		t.Run(name, func(t *testing.T) {
			data, err := fetcher.Fetch(context.Background(), rawURL)
			assert.ErrorIs(t, err, ErrFetch)
			assert.Nil(t, data)
		})
	}
}

func TestHTTPFetcherHonoursContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPFetcher(time.Minute, 1024).Fetch(ctx, ts.URL)
	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, context.Canceled)
}
