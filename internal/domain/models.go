package domain

// ServiceStatus is one record from the remote status feed. Field names
// follow the feed's JSON; timestamps stay strings exactly as sent
// (they may be absent or malformed, the formatter deals with that).
type ServiceStatus struct {
	Name        string  `json:"name"`
	Online      bool    `json:"online"`
	Online24h   float64 `json:"online24h"`
	Online7d    float64 `json:"online7d"`
	LastSuccess string  `json:"lastSuccess"`
	LastError   string  `json:"lastError"`
	LatencyMS   int64   `json:"latencyMs"`
	Failures24h int     `json:"failures24h"`
}

// MonitoredService is one entry of the fixed allow-list. URL is only
// metadata for auxiliary probing and may be empty.
type MonitoredService struct {
	Name string
	URL  string
}

// Monitored returns the allow-list of services the dashboard shows.
// Fixed in this version; anything else in the feed is dropped.
func Monitored() []MonitoredService {
	return []MonitoredService{
		{Name: "Main Site", URL: "https://hamed0406.dev"},
		{Name: "Game API"},
		{Name: "Workshop API", URL: "https://workshop.hamed0406.dev/api/health"},
	}
}

// ProbeOwner names the monitored service the secondary probe result is
// attached to. Exactly one service owns the auxiliary endpoint.
const ProbeOwner = "Workshop API"

// ProbeResult is the outcome of the secondary probe. The zero value is
// the documented failure sentinel: offline, zero latency.
type ProbeResult struct {
	Online    bool  `json:"online"`
	LatencyMS int64 `json:"latencyMs"`
}

// Phase is where the refresh scheduler currently is in its cycle.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseSucceeded Phase = "succeeded"
	PhaseFailed    Phase = "failed"
)
