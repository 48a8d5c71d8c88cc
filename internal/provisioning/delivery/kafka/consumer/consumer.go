package consumer

import (
	"context"

	kafkaDelivery "campaign-srv/internal/provisioning/delivery/kafka"
)

// ConsumeProvisionRequests starts consuming provisioning request messages
func (c *Consumer) ConsumeProvisionRequests(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupProvisionRequests)
	if err != nil {
		return err
	}
	c.provisionRequestsGroup = group

	handler := &provisionRequestsHandler{
		consumer: c,
	}

	// Start consuming in goroutine with context
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicProvisionRequests}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	// Start error handler
	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicProvisionRequests)

	return nil
}
