package view

import (
	"testing"
	"time"

	"github.com/hamed0406/statusboard/internal/domain"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func TestAssemble_ProbeAttachesToOwnerOnly(t *testing.T) {
	services := []domain.ServiceStatus{
		{Name: "Main Site", Online: true, Online24h: 99.9, Online7d: 99.5},
		{Name: domain.ProbeOwner, Online: true, Online24h: 98, Online7d: 97},
	}
	probe := domain.ProbeResult{Online: true, LatencyMS: 1234}

	snap := Assemble(services, probe, domain.PhaseSucceeded, "", now, now)
	if len(snap.Services) != 2 {
		t.Fatalf("want 2 services, got %d", len(snap.Services))
	}
	if snap.Services[0].Probe != nil {
		t.Fatal("probe leaked onto non-owner service")
	}
	owner := snap.Services[1]
	if owner.Probe == nil {
		t.Fatal("owner service missing probe")
	}
	if !owner.Probe.Online || owner.Probe.LatencyMS != 1234 || owner.Probe.LatencyText != "1.23s" {
		t.Fatalf("probe view wrong: %+v", owner.Probe)
	}
}

func TestAssemble_DerivedStrings(t *testing.T) {
	services := []domain.ServiceStatus{{
		Name:        "Main Site",
		Online:      true,
		Online24h:   99.95,
		Online7d:    99.995,
		LatencyMS:   500,
		Failures24h: 3,
		LastSuccess: now.Add(-90 * time.Second).Format(time.RFC3339),
		LastError:   "garbage",
	}}

	snap := Assemble(services, domain.ProbeResult{}, domain.PhaseSucceeded, "", now.Add(-3*time.Second), now)
	v := snap.Services[0]
	if v.Uptime24hText != "99.95%" || v.Uptime7dText != "100.00%" {
		t.Fatalf("uptime strings wrong: %q %q", v.Uptime24hText, v.Uptime7dText)
	}
	if v.LatencyText != "0.50s" {
		t.Fatalf("latency string wrong: %q", v.LatencyText)
	}
	if v.LastSuccessText != "1m ago" {
		t.Fatalf("lastSuccess string wrong: %q", v.LastSuccessText)
	}
	if v.LastErrorText != "Invalid Date" {
		t.Fatalf("lastError string wrong: %q", v.LastErrorText)
	}
	if v.Trend != [2]float64{99.995, 99.95} {
		t.Fatalf("trend order wrong (want 7d then 24h): %v", v.Trend)
	}
	if !snap.Fresh || snap.LastUpdateText != "Just now" {
		t.Fatalf("freshness wrong: fresh=%v text=%q", snap.Fresh, snap.LastUpdateText)
	}
}

func TestAssemble_FailedCycle(t *testing.T) {
	last := now.Add(-10 * time.Minute)
	snap := Assemble(nil, domain.ProbeResult{}, domain.PhaseFailed, "Unable to fetch service status. Please try again later.", last, now)
	if snap.Error == "" || len(snap.Services) != 0 || snap.Loading {
		t.Fatalf("failed snapshot wrong: %+v", snap)
	}
	if snap.LastUpdate != last || snap.LastUpdateText != "10 minutes ago" {
		t.Fatalf("lastUpdate not carried: %+v", snap)
	}
	if snap.Fresh {
		t.Fatal("failed stale snapshot must not be fresh")
	}
}

func TestStore_PublishGet(t *testing.T) {
	st := NewStore()
	if _, ok := st.Get(); ok {
		t.Fatal("expected no snapshot before first publish")
	}
	if snap, _ := st.Get(); !snap.Loading {
		t.Fatal("pre-publish snapshot should present as loading")
	}

	st.Publish(domain.Snapshot{Phase: domain.PhaseSucceeded})
	snap, ok := st.Get()
	if !ok || snap.Phase != domain.PhaseSucceeded {
		t.Fatalf("publish not visible: ok=%v %+v", ok, snap)
	}
}
