package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/statusboard/internal/relay"
)

func TestRelayChecker_OnlineWithLatency(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer ts.Close()

	c := NewRelayChecker(relay.NewClient(ts.URL, 2*time.Second), zap.NewNop())
	out := c.Check(context.Background(), "https://workshop.example.com")
	if !out.Online {
		t.Fatalf("want online, got %+v", out)
	}
	if out.LatencyMS < 0 {
		t.Fatalf("latency should be >= 0, got %d", out.LatencyMS)
	}
}

func TestRelayChecker_BadStatusKeepsLatency(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
		w.WriteHeader(503)
	}))
	defer ts.Close()

	c := NewRelayChecker(relay.NewClient(ts.URL, 2*time.Second), zap.NewNop())
	out := c.Check(context.Background(), "https://workshop.example.com")
	if out.Online {
		t.Fatalf("want offline on 503, got %+v", out)
	}
	if out.LatencyMS < 20 {
		t.Fatalf("latency should still be measured on bad status, got %d", out.LatencyMS)
	}
}

func TestRelayChecker_TransportFailureIsZeroSentinel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // unreachable relay

	c := NewRelayChecker(relay.NewClient(ts.URL, 500*time.Millisecond), zap.NewNop())
	out := c.Check(context.Background(), "https://workshop.example.com")
	if out.Online || out.LatencyMS != 0 {
		t.Fatalf("want zero sentinel on failure, got %+v", out)
	}
}

func TestExtractHost(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://example.com/path", "example.com"},
		{"http://example.com:8080", "example.com"},
		{"not a url", "not a url"},
	}
	for _, c := range cases {
		if got := extractHost(c.in); got != c.want {
			t.Fatalf("extractHost(%q)=%q want %q", c.in, got, c.want)
		}
	}
}
