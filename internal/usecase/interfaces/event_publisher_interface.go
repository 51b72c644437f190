package interfaces

import (
	"context"

	"hotel_procurement/internal/domain/entities"
)

// IEventPublisher announces status changes to downstream consumers (notifications).
type IEventPublisher interface {
	PublishTransition(ctx context.Context, e entities.TransitionEvent) error
}
