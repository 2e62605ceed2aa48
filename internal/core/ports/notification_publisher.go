package ports

import (
	"context"

	"ordering/internal/core/domain/services"
)

// NotificationPublisher delivers a serialized event to one audience. The
// implementation owns routing, connection management and retries; callers
// treat delivery as best-effort and never block business flow on its outcome.
type NotificationPublisher interface {
	// Publish sends payload to every subscriber of audience.
	Publish(ctx context.Context, audience services.Audience, payload []byte) error
}
