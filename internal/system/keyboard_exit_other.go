//go:build !linux

package system

import "context"

// StartExitOnKey is a no-op outside Linux.
func StartExitOnKey(ctx context.Context, l logger, key uint16, onExit func()) {
	if l != nil {
		l.Infof("input", "exit key watching is only supported on linux")
	}
}
