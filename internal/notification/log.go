package notification

import (
	"context"

	"taskflow/internal/logging"
)

// LogPublisher writes messages to the application log instead of a broker.
// Used when no Redis address is configured, e.g. in local development.
type LogPublisher struct {
	logger logging.Logger
}

var _ Publisher = (*LogPublisher)(nil)

func NewLogPublisher(logger logging.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	p.logger.Info(ctx, "notification",
		"to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}
