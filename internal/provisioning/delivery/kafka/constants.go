package kafka

// ============================================
// Kafka Topics
// ============================================

const (
	// Consumer Topics
	TopicProvisionRequests = "provisioning.requests"

	// Producer Topics
	TopicRunEvents = "provisioning.events"
)

// ============================================
// Consumer Group IDs
// ============================================

const (
	ConsumerGroupProvisionRequests = "campaign-srv"
)

// ============================================
// Event Types (for routing in the run events topic)
// ============================================

const (
	EventTypeRunCompleted = "run.completed"
	EventTypeRunFailed    = "run.failed"
)
