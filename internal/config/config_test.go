package config

import (
	"testing"
	"time"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("RELAY_URL", "https://relay.test/get")
	t.Setenv("STATUS_FEED_URL", "https://feed.test/services")
	t.Setenv("PROBE_URL", "https://probe.test/health")
	t.Setenv("REFRESH_INTERVAL_MS", "30000")
	t.Setenv("FETCH_TIMEOUT_MS", "2500")
	t.Setenv("NOTIFY_COOLDOWN_MS", "60000")
	t.Setenv("REFRESH_RPM", "20")
	t.Setenv("REFRESH_BURST", "4")

	cfg := FromEnv()

	if cfg.Addr != ":9090" || cfg.LogDir != "./_testlogs" {
		t.Fatalf("addr/logdir wrong: %+v", cfg)
	}
	if cfg.RelayURL != "https://relay.test/get" || cfg.StatusFeedURL != "https://feed.test/services" {
		t.Fatalf("urls wrong: %+v", cfg)
	}
	if cfg.ProbeURL != "https://probe.test/health" {
		t.Fatalf("probe url wrong: %q", cfg.ProbeURL)
	}
	if cfg.RefreshInterval != 30*time.Second || cfg.FetchTimeout != 2500*time.Millisecond {
		t.Fatalf("durations wrong: %+v", cfg)
	}
	if cfg.RefreshRPM != 20 || cfg.RefreshBurst != 4 {
		t.Fatalf("rate limit wrong: %+v", cfg)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{
		"ADDR", "LOG_DIR", "RELAY_URL", "STATUS_FEED_URL", "PROBE_URL",
		"REFRESH_INTERVAL_MS", "FETCH_TIMEOUT_MS", "NOTIFY_COOLDOWN_MS",
		"REFRESH_RPM", "REFRESH_BURST",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()
	if cfg.RefreshInterval != 60*time.Second {
		t.Fatalf("default interval wrong: %v", cfg.RefreshInterval)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("default timeout wrong: %v", cfg.FetchTimeout)
	}
	if cfg.RelayURL == "" || cfg.StatusFeedURL == "" {
		t.Fatalf("default urls missing: %+v", cfg)
	}
	if cfg.ProbeURL == "" {
		t.Fatal("probe url should default to the probe owner's url")
	}
	if cfg.SlackWebhook != "" {
		t.Fatal("notifications should default to disabled")
	}
}

func TestFromEnv_BadNumbersFallBack(t *testing.T) {
	t.Setenv("REFRESH_INTERVAL_MS", "soon")
	t.Setenv("REFRESH_RPM", "-3")

	cfg := FromEnv()
	if cfg.RefreshInterval != 60*time.Second {
		t.Fatalf("bad interval should fall back, got %v", cfg.RefreshInterval)
	}
	if cfg.RefreshRPM != 10 {
		t.Fatalf("bad rpm should fall back, got %d", cfg.RefreshRPM)
	}
}
