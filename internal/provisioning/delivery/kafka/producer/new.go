package producer

import (
	"campaign-srv/internal/provisioning"
	pkgKafka "campaign-srv/pkg/kafka"
	"campaign-srv/pkg/log"
)

// Producer interface for the provisioning domain
type Producer interface {
	provisioning.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new provisioning producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
