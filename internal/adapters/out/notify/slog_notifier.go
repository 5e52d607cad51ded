// Package notify implements the user-facing notification channel. On this
// prototype the device alert surface is represented by a structured log
// sink; the dispatch contract (immediate, fire-and-forget, non-critical)
// is the same one a platform notification service would get.
package notify

import (
	"context"
	"log/slog"
)

// SlogNotifier implements ports.Notifier by emitting each alert as a
// structured log record.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier writing to the given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Notify emits the alert immediately. It never blocks on delivery
// confirmation and its error is advisory only.
func (n *SlogNotifier) Notify(ctx context.Context, title, body string) error {
	n.logger.InfoContext(ctx, "user notification", "title", title, "body", body)
	return nil
}
