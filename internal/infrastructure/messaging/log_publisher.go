package messaging

import (
	"context"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/infrastructure/logging"
	"hotel_procurement/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// LogPublisher writes transition events to the process log. Used when no
// topic is configured.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = LogPublisher{}

func (LogPublisher) PublishTransition(_ context.Context, e entities.TransitionEvent) error {
	logging.GetLogger().WithFields(logrus.Fields{
		"requestId": e.RequestID,
		"reference": e.ReferenceNumber,
		"from":      e.From,
		"to":        e.To,
		"action":    e.Action,
		"actor":     e.Actor.ID,
	}).Info("[messaging][log] request transition")
	return nil
}
