package probe

import (
	"context"

	"github.com/hamed0406/statusboard/internal/domain"
)

// Checker measures reachability of one auxiliary endpoint.
type Checker interface {
	Check(ctx context.Context, target string) domain.ProbeResult
}
