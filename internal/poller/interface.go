package poller

import "context"

// Poller drives the polling loop over the watch directory
type Poller interface {
	Start(ctx context.Context) error
}
