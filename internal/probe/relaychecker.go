package probe

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/statusboard/internal/domain"
	"github.com/hamed0406/statusboard/internal/relay"
)

// RelayChecker probes the auxiliary endpoint through the same CORS
// relay the status feed goes through. The measured number is therefore
// the relay round-trip, which the relay's own latency dominates — it
// is not the target's latency. Kept because the dashboard's "latency"
// has always meant this round-trip.
type RelayChecker struct {
	Relay  *relay.Client
	Logger *zap.Logger
}

func NewRelayChecker(r *relay.Client, logger *zap.Logger) *RelayChecker {
	return &RelayChecker{Relay: r, Logger: logger}
}

// Check measures wall-clock time around one relayed request. A
// non-success status still yields the measured latency with
// online=false; a transport failure collapses to the zero sentinel
// (offline, 0ms) — the elapsed time is logged, not reported.
func (c *RelayChecker) Check(ctx context.Context, target string) domain.ProbeResult {
	start := time.Now()
	code, err := c.Relay.Ping(ctx, target)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		fields := []zap.Field{
			zap.String("target", target),
			zap.String("kind", string(relay.KindOf(err))),
			zap.Int64("elapsed_ms", elapsed),
			zap.Error(err),
		}
		// classify DNS on transport failures; relay timeouts tell us
		// nothing about the target's own records
		if relay.KindOf(err) == relay.KindTransport {
			dns := CheckDNS(extractHost(target))
			fields = append(fields, zap.String("dns_class", dns.Class))
		}
		c.Logger.Warn("probe_failed", fields...)
		return domain.ProbeResult{}
	}

	up := code >= 200 && code < 400
	c.Logger.Debug("probe_checked",
		zap.String("target", target),
		zap.Int("status", code),
		zap.Bool("online", up),
		zap.Int64("latency_ms", elapsed),
	)
	return domain.ProbeResult{Online: up, LatencyMS: elapsed}
}
