//go:build !windows

package windebug

import (
	"context"

	"github.com/orca-repos/orca-sub012/internal/core/domain"
)

// SystemListener reads the system debug channel.
type SystemListener struct{}

// Listen always fails: only Windows has a system debug channel.
func (SystemListener) Listen(_ context.Context, _ func(Message)) error {
	return domain.ErrDebugOutputUnsupported
}
