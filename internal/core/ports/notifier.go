package ports

import "context"

// Notifier delivers a user-facing alert with a title and body, immediately
// and fire-and-forget. Dispatch failures are non-critical: callers log and
// continue, they never roll back a committed transition over a lost
// notification.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}
