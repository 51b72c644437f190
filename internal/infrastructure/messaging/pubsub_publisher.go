package messaging

import (
	"context"
	"encoding/json"

	"hotel_procurement/internal/domain/entities"
	"hotel_procurement/internal/usecase/interfaces"

	"cloud.google.com/go/pubsub"
)

// PubSubPublisher sends transition events to a topic. Attributes carry the
// status pair so subscribers can filter without decoding the body.
type PubSubPublisher struct {
	topic *pubsub.Topic
}

var _ interfaces.IEventPublisher = (*PubSubPublisher)(nil)

func NewPubSubPublisher(client *pubsub.Client, topicName string) *PubSubPublisher {
	return &PubSubPublisher{topic: client.Topic(topicName)}
}

func (p *PubSubPublisher) PublishTransition(ctx context.Context, e entities.TransitionEvent) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	res := p.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"requestId": e.RequestID,
			"from":      string(e.From),
			"to":        string(e.To),
			"branchId":  e.BranchID,
		},
	})
	if _, err := res.Get(ctx); err != nil {
		return entities.ExternalServiceError("pubsub", err)
	}
	return nil
}

// Stop flushes pending messages.
func (p *PubSubPublisher) Stop() {
	p.topic.Stop()
}
