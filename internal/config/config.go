package config

import (
	"os"
	"strconv"
	"time"

	"github.com/hamed0406/statusboard/internal/domain"
)

type Config struct {
	Addr   string // API bind address, e.g., "127.0.0.1:8080" (Windows) or ":8080" (Docker)
	LogDir string // logs directory

	RelayURL      string // public CORS relay, envelope style (contents field)
	StatusFeedURL string // primary status feed, fetched through the relay
	ProbeURL      string // auxiliary endpoint for the secondary probe

	RefreshInterval time.Duration // how often a cycle runs
	FetchTimeout    time.Duration // per-fetch deadline inside a cycle

	SlackWebhook   string        // empty disables offline notifications
	NotifyCooldown time.Duration // suppresses repeat DOWN alerts

	RefreshRPM   int // manual-refresh rate limit, requests per minute
	RefreshBurst int
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	relayURL := os.Getenv("RELAY_URL")
	if relayURL == "" {
		relayURL = "https://api.allorigins.win/get"
	}

	feedURL := os.Getenv("STATUS_FEED_URL")
	if feedURL == "" {
		feedURL = "https://status.hamed0406.dev/api/services"
	}

	// default probe target is the monitored service that owns the probe
	probeURL := os.Getenv("PROBE_URL")
	if probeURL == "" {
		for _, m := range domain.Monitored() {
			if m.Name == domain.ProbeOwner {
				probeURL = m.URL
			}
		}
	}

	return Config{
		Addr:            addr,
		LogDir:          logDir,
		RelayURL:        relayURL,
		StatusFeedURL:   feedURL,
		ProbeURL:        probeURL,
		RefreshInterval: durationMS("REFRESH_INTERVAL_MS", 60*time.Second),
		FetchTimeout:    durationMS("FETCH_TIMEOUT_MS", 10*time.Second),
		SlackWebhook:    os.Getenv("SLACK_WEBHOOK"),
		NotifyCooldown:  durationMS("NOTIFY_COOLDOWN_MS", 10*time.Minute),
		RefreshRPM:      intEnv("REFRESH_RPM", 10),
		RefreshBurst:    intEnv("REFRESH_BURST", 5),
	}
}

func durationMS(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
