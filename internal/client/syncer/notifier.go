package syncer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kwokm/mk-todo/internal/client/api"
)

// Notifier surfaces mutation outcomes to the user.
type Notifier interface {
	Success(ctx context.Context, message string)
	Failure(ctx context.Context, mutation string, err error)
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{log: logger.With("component", "notifier")}
}

func (n *LogNotifier) Success(ctx context.Context, message string) {
	n.log.InfoContext(ctx, message)
}

func (n *LogNotifier) Failure(ctx context.Context, mutation string, err error) {
	n.log.ErrorContext(ctx, FailureMessage(mutation, err))
}

// FailureMessage is the user-facing text for a failed mutation. Rejections
// carry the server's reason; anything else reads as a generic failure.
func FailureMessage(mutation string, err error) string {
	var te *api.TransportError
	if errors.As(err, &te) && (te.Invalid() || te.NotFound()) && te.Message != "" {
		return "Failed to " + mutation + ": " + te.Message
	}
	return "Failed to " + mutation
}
