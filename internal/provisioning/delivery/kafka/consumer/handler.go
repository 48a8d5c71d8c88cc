package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"campaign-srv/internal/model"
	kafkaDelivery "campaign-srv/internal/provisioning/delivery/kafka"
	"campaign-srv/pkg/scope"
)

type provisionRequestsHandler struct {
	consumer *Consumer
}

func (h *provisionRequestsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *provisionRequestsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *provisionRequestsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleProvisionRequestMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "provisioning.delivery.kafka.consumer.ConsumeClaim: Failed to process provision request: %v", err)
		}
		// Failed runs are terminal, a redelivery would start a brand new run.
		session.MarkMessage(msg, "")
	}
	return nil
}

// handleProvisionRequestMessage receives a message, normalizes scope + input
// and delegates to the usecase. No business logic here.
func (c *Consumer) handleProvisionRequestMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	c.l.Infof(ctx, "provisioning.delivery.kafka.consumer.handleProvisionRequestMessage: Processing message from partition %d, offset %d",
		msg.Partition, msg.Offset)

	var message kafkaDelivery.ProvisionRequestedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "provisioning.delivery.kafka.consumer.handleProvisionRequestMessage: Invalid message format (skipping): %v", err)
		return nil // Skip invalid messages
	}

	// Format check only; business rules stay in the usecase
	if message.CustomerID == "" {
		c.l.Warnf(ctx, "provisioning.delivery.kafka.consumer.handleProvisionRequestMessage: Invalid message: missing customer_id (skipping)")
		return nil
	}

	input := toProvisionInput(message)

	// System scope for background processing
	sc := model.Scope{
		UserID: "system",
		Role:   "system",
	}
	ctx = scope.SetScopeToContext(ctx, sc)

	output, err := c.uc.Provision(ctx, input)
	if err != nil {
		c.l.Errorf(ctx, "provisioning.delivery.kafka.consumer.handleProvisionRequestMessage: usecase Provision failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}

	c.l.Infof(ctx, "provisioning.delivery.kafka.consumer.handleProvisionRequestMessage: Run %s finished with status %s (ads=%d keywords=%d)",
		output.Run.ID, output.Run.Status, output.Run.AdsCreated, output.Run.KeywordsCreated)
	return nil
}
