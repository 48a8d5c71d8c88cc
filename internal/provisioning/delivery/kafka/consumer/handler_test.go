package consumer

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"

	"campaign-srv/internal/model"
	"campaign-srv/internal/provisioning"
	kafkaDelivery "campaign-srv/internal/provisioning/delivery/kafka"
	"campaign-srv/pkg/scope"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

type fakeUseCase struct {
	inputs       []provisioning.ProvisionInput
	scopes       []model.Scope
	provisionErr error
}

func (f *fakeUseCase) Provision(ctx context.Context, input provisioning.ProvisionInput) (provisioning.ProvisionOutput, error) {
	f.inputs = append(f.inputs, input)
	if sc, ok := scope.GetScopeFromContext(ctx); ok {
		f.scopes = append(f.scopes, sc)
	}
	if f.provisionErr != nil {
		return provisioning.ProvisionOutput{}, f.provisionErr
	}
	return provisioning.ProvisionOutput{
		Run: model.ProvisioningRun{ID: "run-1", Status: model.RunStatusCompleted},
	}, nil
}

func (f *fakeUseCase) GetRun(ctx context.Context, runID string) (provisioning.RunOutput, error) {
	return provisioning.RunOutput{}, nil
}

func (f *fakeUseCase) ListRuns(ctx context.Context, input provisioning.ListRunsInput) (provisioning.ListRunsOutput, error) {
	return provisioning.ListRunsOutput{}, nil
}

func newTestConsumer(uc provisioning.UseCase) *Consumer {
	return &Consumer{
		l:  noopLogger{},
		uc: uc,
	}
}

func TestHandleProvisionRequestMessage(t *testing.T) {
	t.Run("valid message", func(t *testing.T) {
		uc := &fakeUseCase{}
		c := newTestConsumer(uc)

		msg := &sarama.ConsumerMessage{
			Topic: kafkaDelivery.TopicProvisionRequests,
			Value: []byte(`{"customer_id":"1234567890","mode":"HYBRID","requested_by":"scheduler"}`),
		}
		if err := c.handleProvisionRequestMessage(msg); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}

		if len(uc.inputs) != 1 {
			t.Fatalf("provision calls: got %d, want 1", len(uc.inputs))
		}
		input := uc.inputs[0]
		if input.CustomerID != "1234567890" {
			t.Errorf("customer id: got %s", input.CustomerID)
		}
		if input.Mode != model.RunModeHybrid {
			t.Errorf("mode: got %s, want HYBRID", input.Mode)
		}
		if input.RequestedBy != "scheduler" {
			t.Errorf("requested by: got %s", input.RequestedBy)
		}
		if len(uc.scopes) != 1 || uc.scopes[0].UserID != "system" {
			t.Errorf("background processing should run under the system scope, got %+v", uc.scopes)
		}
	})

	t.Run("requested_by defaults to system", func(t *testing.T) {
		uc := &fakeUseCase{}
		c := newTestConsumer(uc)

		msg := &sarama.ConsumerMessage{
			Value: []byte(`{"customer_id":"1234567890"}`),
		}
		if err := c.handleProvisionRequestMessage(msg); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if uc.inputs[0].RequestedBy != "system" {
			t.Errorf("requested by: got %s, want system", uc.inputs[0].RequestedBy)
		}
	})

	t.Run("invalid json skipped", func(t *testing.T) {
		uc := &fakeUseCase{}
		c := newTestConsumer(uc)

		msg := &sarama.ConsumerMessage{Value: []byte(`{not json`)}
		if err := c.handleProvisionRequestMessage(msg); err != nil {
			t.Fatalf("invalid messages should be skipped, not retried: %v", err)
		}
		if len(uc.inputs) != 0 {
			t.Errorf("usecase should not be called for invalid messages")
		}
	})

	t.Run("missing customer id skipped", func(t *testing.T) {
		uc := &fakeUseCase{}
		c := newTestConsumer(uc)

		msg := &sarama.ConsumerMessage{Value: []byte(`{"mode":"NATIVE"}`)}
		if err := c.handleProvisionRequestMessage(msg); err != nil {
			t.Fatalf("messages without customer_id should be skipped: %v", err)
		}
		if len(uc.inputs) != 0 {
			t.Errorf("usecase should not be called without a customer id")
		}
	})

	t.Run("usecase failure surfaces", func(t *testing.T) {
		uc := &fakeUseCase{provisionErr: errors.New("budget step failed")}
		c := newTestConsumer(uc)

		msg := &sarama.ConsumerMessage{Value: []byte(`{"customer_id":"1234567890"}`)}
		if err := c.handleProvisionRequestMessage(msg); err == nil {
			t.Fatal("expected the usecase error to surface for logging")
		}
	})
}
