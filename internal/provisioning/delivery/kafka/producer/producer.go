package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"campaign-srv/internal/provisioning"
	kafkaDelivery "campaign-srv/internal/provisioning/delivery/kafka"
)

// PublishRunCompleted publishes a run completion event
func (p *implProducer) PublishRunCompleted(ctx context.Context, event provisioning.RunCompletedEvent) error {
	msg := kafkaDelivery.RunCompletedMessage{
		EventType:        kafkaDelivery.EventTypeRunCompleted,
		RunID:            event.RunID,
		CustomerID:       event.CustomerID,
		Mode:             event.Mode,
		CampaignResource: event.CampaignResource,
		AdsCreated:       event.AdsCreated,
		KeywordsCreated:  event.KeywordsCreated,
		ReportURL:        event.ReportURL,
		CompletedAt:      event.CompletedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal run completed event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.RunID), body); err != nil {
		return fmt.Errorf("failed to publish run completed event: %w", err)
	}

	p.l.Infof(ctx, "Published run completed event for run %s", event.RunID)
	return nil
}

// PublishRunFailed publishes a run failure event
func (p *implProducer) PublishRunFailed(ctx context.Context, event provisioning.RunFailedEvent) error {
	msg := kafkaDelivery.RunFailedMessage{
		EventType:    kafkaDelivery.EventTypeRunFailed,
		RunID:        event.RunID,
		CustomerID:   event.CustomerID,
		Mode:         event.Mode,
		FailedStep:   event.FailedStep,
		ErrorMessage: event.ErrorMessage,
		FailedAt:     event.FailedAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal run failed event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.RunID), body); err != nil {
		return fmt.Errorf("failed to publish run failed event: %w", err)
	}

	p.l.Infof(ctx, "Published run failed event for run %s (step %s)", event.RunID, event.FailedStep)
	return nil
}
