package domain

import "time"

// Snapshot is the full view model for one refresh cycle. The renderer
// only ever sees whole snapshots; fields are never updated in place.
type Snapshot struct {
	Phase      Phase     `json:"phase"`
	Loading    bool      `json:"loading"`
	Error      string    `json:"error,omitempty"`
	LastUpdate time.Time `json:"lastUpdate"`

	// LastUpdateText and Fresh are derived from LastUpdate at assembly
	// time so the renderer does not need its own clock.
	LastUpdateText string `json:"lastUpdateText"`
	Fresh          bool   `json:"fresh"`

	Services []ServiceView `json:"services"`
}

// ServiceView is one card on the dashboard: the raw numbers for the
// trend chart plus the formatted strings for the card body.
type ServiceView struct {
	Name   string `json:"name"`
	Online bool   `json:"online"`

	Uptime24h     float64 `json:"uptime24h"`
	Uptime24hText string  `json:"uptime24hText"`
	Uptime7d      float64 `json:"uptime7d"`
	Uptime7dText  string  `json:"uptime7dText"`

	LatencyMS   int64  `json:"latencyMs"`
	LatencyText string `json:"latencyText"`
	Failures24h int    `json:"failures24h"`

	LastSuccessText string `json:"lastSuccessText"`
	LastErrorText   string `json:"lastErrorText"`

	// Trend is the two chart points, 7-day then 24-hour uptime.
	Trend [2]float64 `json:"trend"`

	// Probe is set only on the service that owns the auxiliary endpoint.
	Probe *ProbeView `json:"probe,omitempty"`
}

// ProbeView is the secondary probe pair as shown on the owning card.
type ProbeView struct {
	Online      bool   `json:"online"`
	LatencyMS   int64  `json:"latencyMs"`
	LatencyText string `json:"latencyText"`
}
