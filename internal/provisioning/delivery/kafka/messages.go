package kafka

import (
	"time"
)

// ProvisionRequestedMessage - Kafka message on provisioning.requests
type ProvisionRequestedMessage struct {
	CustomerID  string    `json:"customer_id"`
	Mode        string    `json:"mode,omitempty"`
	RequestedBy string    `json:"requested_by,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// RunCompletedMessage - Kafka message on provisioning.events
type RunCompletedMessage struct {
	EventType        string    `json:"event_type"`
	RunID            string    `json:"run_id"`
	CustomerID       string    `json:"customer_id"`
	Mode             string    `json:"mode"`
	CampaignResource string    `json:"campaign_resource"`
	AdsCreated       int       `json:"ads_created"`
	KeywordsCreated  int       `json:"keywords_created"`
	ReportURL        string    `json:"report_url,omitempty"`
	CompletedAt      time.Time `json:"completed_at"`
}

// RunFailedMessage - Kafka message on provisioning.events
type RunFailedMessage struct {
	EventType    string    `json:"event_type"`
	RunID        string    `json:"run_id"`
	CustomerID   string    `json:"customer_id"`
	Mode         string    `json:"mode"`
	FailedStep   string    `json:"failed_step"`
	ErrorMessage string    `json:"error_message"`
	FailedAt     time.Time `json:"failed_at"`
}
