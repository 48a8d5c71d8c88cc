package consumer

import (
	"campaign-srv/internal/provisioning"
	kafkaDelivery "campaign-srv/internal/provisioning/delivery/kafka"
)

// toProvisionInput maps the Kafka message DTO to the usecase input.
func toProvisionInput(m kafkaDelivery.ProvisionRequestedMessage) provisioning.ProvisionInput {
	requestedBy := m.RequestedBy
	if requestedBy == "" {
		requestedBy = "system"
	}

	return provisioning.ProvisionInput{
		CustomerID:  m.CustomerID,
		Mode:        m.Mode,
		RequestedBy: requestedBy,
	}
}
