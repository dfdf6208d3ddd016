package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/hamed0406/statusboard/internal/domain"
	"github.com/hamed0406/statusboard/internal/notify"
)

// Transitions watches consecutive successful cycles for services
// flipping online state and notifies on flips. It never touches the
// snapshot; a broken webhook cannot break the page.
type Transitions struct {
	Notifier        notify.Notifier
	Cooldown        time.Duration
	AlertOnRecovery bool
	Now             func() time.Time

	last     map[string]bool
	lastSent map[string]time.Time
}

func NewTransitions(n notify.Notifier, cooldown time.Duration, alertOnRecovery bool) *Transitions {
	return &Transitions{
		Notifier:        n,
		Cooldown:        cooldown,
		AlertOnRecovery: alertOnRecovery,
		Now:             time.Now,
		last:            make(map[string]bool),
		lastSent:        make(map[string]time.Time),
	}
}

// Observe records the cycle's online states and sends a notification
// for each service whose state changed. Cooldown only suppresses
// repeat DOWN alerts; recovery alerts bypass it.
func (t *Transitions) Observe(ctx context.Context, services []domain.ServiceStatus) {
	if t == nil || t.Notifier == nil {
		return
	}
	now := t.Now()

	for _, s := range services {
		prev, seen := t.last[s.Name]
		stateChanged := !seen || prev != s.Online

		cooled := true
		if sent, ok := t.lastSent[s.Name]; ok {
			cooled = now.Sub(sent) >= t.Cooldown
		}

		downAlert := stateChanged && !s.Online && cooled
		recoveryAlert := stateChanged && s.Online && seen && t.AlertOnRecovery

		if downAlert || recoveryAlert {
			title := "🔴 Service DOWN"
			if s.Online {
				title = "🟢 Service RECOVERED"
			}
			text := fmt.Sprintf(
				"Service: %s\nUptime 24h: %.2f%%\nFailures 24h: %d\nLast success: %s",
				s.Name, s.Online24h, s.Failures24h, s.LastSuccess,
			)
			// best-effort send, then remember when
			_ = t.Notifier.Send(ctx, title, text)
			t.lastSent[s.Name] = now
		}

		if stateChanged {
			t.last[s.Name] = s.Online
		}
	}
}
