package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hamed0406/statusboard/internal/domain"
)

type memNotifier struct {
	mu     sync.Mutex
	n      int
	titles []string
}

func (m *memNotifier) Send(ctx context.Context, title, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	m.titles = append(m.titles, title)
	return nil
}

func (m *memNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

func down(name string) domain.ServiceStatus {
	return domain.ServiceStatus{Name: name, Online: false, Online24h: 90}
}

func up(name string) domain.ServiceStatus {
	return domain.ServiceStatus{Name: name, Online: true, Online24h: 99.9}
}

func TestTransitions_AlertsOnDownRespectsCooldown(t *testing.T) {
	nt := &memNotifier{}
	tr := NewTransitions(nt, time.Minute, true)

	// first sight of a down service -> alert
	tr.Observe(context.Background(), []domain.ServiceStatus{down("Main Site")})
	if nt.count() != 1 {
		t.Fatalf("want 1 alert, got %d", nt.count())
	}

	// same down state -> nothing new
	tr.Observe(context.Background(), []domain.ServiceStatus{down("Main Site")})
	if nt.count() != 1 {
		t.Fatalf("unchanged state alerted, got %d alerts", nt.count())
	}
}

func TestTransitions_FlapWithinCooldownSuppressed(t *testing.T) {
	nt := &memNotifier{}
	tr := NewTransitions(nt, time.Hour, false) // recovery alerts off

	tr.Observe(context.Background(), []domain.ServiceStatus{down("Main Site")})
	tr.Observe(context.Background(), []domain.ServiceStatus{up("Main Site")})
	tr.Observe(context.Background(), []domain.ServiceStatus{down("Main Site")})

	// second DOWN flip lands inside the cooldown window
	if nt.count() != 1 {
		t.Fatalf("want flap suppressed, got %d alerts", nt.count())
	}
}

func TestTransitions_RecoveryBypassesCooldown(t *testing.T) {
	nt := &memNotifier{}
	tr := NewTransitions(nt, time.Hour, true)

	tr.Observe(context.Background(), []domain.ServiceStatus{down("Game API")})
	tr.Observe(context.Background(), []domain.ServiceStatus{up("Game API")})

	if nt.count() != 2 {
		t.Fatalf("want down then recovery, got %d alerts", nt.count())
	}
	if nt.titles[1] != "🟢 Service RECOVERED" {
		t.Fatalf("want recovery title, got %q", nt.titles[1])
	}
}

func TestTransitions_FirstSightOnlineIsQuiet(t *testing.T) {
	nt := &memNotifier{}
	tr := NewTransitions(nt, time.Minute, true)

	tr.Observe(context.Background(), []domain.ServiceStatus{up("Main Site"), up("Game API")})
	if nt.count() != 0 {
		t.Fatalf("healthy first cycle should not alert, got %d", nt.count())
	}
}

func TestTransitions_NilNotifierIsNoop(t *testing.T) {
	tr := NewTransitions(nil, time.Minute, true)
	tr.Observe(context.Background(), []domain.ServiceStatus{down("Main Site")})
	// nothing to assert beyond not panicking
}
