package feed

import (
	"context"

	"github.com/hamed0406/statusboard/internal/domain"
	"github.com/hamed0406/statusboard/internal/relay"
)

// Client fetches the primary status feed through the relay.
type Client struct {
	Relay     *relay.Client
	StatusURL string
}

func NewClient(r *relay.Client, statusURL string) *Client {
	return &Client{Relay: r, StatusURL: statusURL}
}

// Fetch returns the raw service list from the status feed. Entries
// replace the previous cycle's wholesale; nothing is merged.
func (c *Client) Fetch(ctx context.Context) ([]domain.ServiceStatus, error) {
	var raw []domain.ServiceStatus
	if err := c.Relay.FetchJSON(ctx, c.StatusURL, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Filter narrows raw to entries whose name appears in the monitored
// set, preserving the feed's order. Monitored names missing from the
// feed are silently omitted.
func Filter(raw []domain.ServiceStatus, monitored []domain.MonitoredService) []domain.ServiceStatus {
	names := make(map[string]struct{}, len(monitored))
	for _, m := range monitored {
		names[m.Name] = struct{}{}
	}
	out := make([]domain.ServiceStatus, 0, len(monitored))
	for _, s := range raw {
		if _, ok := names[s.Name]; ok {
			out = append(out, s)
		}
	}
	return out
}
