package view

import (
	"time"

	"github.com/hamed0406/statusboard/internal/display"
	"github.com/hamed0406/statusboard/internal/domain"
)

// Assemble builds the snapshot for one refresh cycle: filtered
// services, the probe pair on its owning card, and every derived
// string computed against the same clock so the whole page is
// internally consistent.
func Assemble(services []domain.ServiceStatus, probe domain.ProbeResult, phase domain.Phase, errMsg string, lastUpdate, now time.Time) domain.Snapshot {
	snap := domain.Snapshot{
		Phase:      phase,
		Loading:    phase == domain.PhaseLoading,
		Error:      errMsg,
		LastUpdate: lastUpdate,
		Fresh:      !lastUpdate.IsZero() && display.IsFresh(lastUpdate, now),
	}
	if !lastUpdate.IsZero() {
		snap.LastUpdateText = display.RelativeTime(lastUpdate, now)
	}

	snap.Services = make([]domain.ServiceView, 0, len(services))
	for _, s := range services {
		v := domain.ServiceView{
			Name:            s.Name,
			Online:          s.Online,
			Uptime24h:       s.Online24h,
			Uptime24hText:   display.PercentString(s.Online24h),
			Uptime7d:        s.Online7d,
			Uptime7dText:    display.PercentString(s.Online7d),
			LatencyMS:       s.LatencyMS,
			LatencyText:     display.LatencyString(s.LatencyMS),
			Failures24h:     s.Failures24h,
			LastSuccessText: display.CompactTimestamp(s.LastSuccess, now),
			LastErrorText:   display.CompactTimestamp(s.LastError, now),
			Trend:           [2]float64{s.Online7d, s.Online24h},
		}
		if s.Name == domain.ProbeOwner {
			v.Probe = &domain.ProbeView{
				Online:      probe.Online,
				LatencyMS:   probe.LatencyMS,
				LatencyText: display.LatencyString(probe.LatencyMS),
			}
		}
		snap.Services = append(snap.Services, v)
	}
	return snap
}
