package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
)

// consumerImpl implements IConsumer on top of sarama.ConsumerGroup.
type consumerImpl struct {
	group sarama.ConsumerGroup
}

func newConsumerImpl(cfg ConsumerConfig) (*consumerImpl, error) {
	group, err := NewConsumerGroup(cfg)
	if err != nil {
		return nil, err
	}
	return &consumerImpl{group: group}, nil
}

// Consume starts consuming from topics using a background context.
func (c *consumerImpl) Consume(topics []string, handler sarama.ConsumerGroupHandler) error {
	return c.ConsumeWithContext(context.Background(), topics, handler)
}

// ConsumeWithContext consumes until the context is cancelled. sarama returns
// from Consume on rebalance, so it is called in a loop.
func (c *consumerImpl) ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error {
	for {
		if err := c.group.Consume(ctx, topics, handler); err != nil {
			return fmt.Errorf("kafka: consume failed: %w", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Close closes the consumer group.
func (c *consumerImpl) Close() error {
	return c.group.Close()
}

// Errors returns the consumer group error channel.
func (c *consumerImpl) Errors() <-chan error {
	errs := make(chan error)
	go func() {
		defer close(errs)
		for err := range c.group.Errors() {
			errs <- err
		}
	}()
	return errs
}
