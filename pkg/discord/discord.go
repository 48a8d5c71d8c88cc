package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

const webhookURLFormat = "https://discord.com/api/webhooks/%s/%s"

// Embed colors per message type.
const (
	colorInfo    = 0x3498db
	colorSuccess = 0x2ecc71
	colorWarning = 0xf1c40f
	colorError   = 0xe74c3c
)

// DefaultConfig returns the default Discord service configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		RetryCount:      2,
		RetryDelay:      500 * time.Millisecond,
		DefaultUsername: "campaign-srv",
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// GetWebhookURL returns the full webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf(webhookURLFormat, d.webhook.ID, d.webhook.Token)
}

// SendMessage sends a plain text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendEmbed sends an embed message built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	embed := Embed{
		Title:       options.Title,
		Description: options.Description,
		Color:       colorForType(options.Type),
		Fields:      options.Fields,
		Footer:      options.Footer,
		Author:      options.Author,
		Thumbnail:   options.Thumbnail,
		Image:       options.Image,
	}
	if !options.Timestamp.IsZero() {
		embed.Timestamp = options.Timestamp.UTC().Format(time.RFC3339)
	}

	username := options.Username
	if username == "" {
		username = d.config.DefaultUsername
	}

	return d.send(ctx, WebhookPayload{
		Username:  username,
		AvatarURL: options.AvatarURL,
		Embeds:    []Embed{embed},
	})
}

// SendError sends an error embed with the error message as a field.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Level:       LevelHigh,
		Title:       title,
		Description: description,
		Fields:      fields,
		Timestamp:   time.Now(),
	})
}

// SendSuccess sends a success embed.
func (d *discordImpl) SendSuccess(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeSuccess,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	})
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeWarning,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	})
}

// SendInfo sends an info embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
		Timestamp:   time.Now(),
	})
}

// ReportBug sends a bug report message.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Level:       LevelUrgent,
		Title:       "Bug Report",
		Description: message,
		Timestamp:   time.Now(),
	})
}

// SendNotification sends an info embed with key-value fields.
func (d *discordImpl) SendNotification(ctx context.Context, title, description string, fields map[string]string) error {
	embedFields := make([]EmbedField, 0, len(fields))
	for name, value := range fields {
		embedFields = append(embedFields, EmbedField{Name: name, Value: value, Inline: true})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
		Fields:      embedFields,
		Timestamp:   time.Now(),
	})
}

// SendActivityLog sends an activity log entry.
func (d *discordImpl) SendActivityLog(ctx context.Context, action, user, details string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:  MessageTypeInfo,
		Title: "Activity Log",
		Fields: []EmbedField{
			{Name: "Action", Value: action, Inline: true},
			{Name: "User", Value: user, Inline: true},
			{Name: "Details", Value: details},
		},
		Timestamp: time.Now(),
	})
}

// Close releases resources.
func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: marshal payload: %w", err)
	}

	var lastErr error
	for i := 0; i <= d.config.RetryCount; i++ {
		if i > 0 {
			time.Sleep(d.config.RetryDelay)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.GetWebhookURL(), bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("discord: create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode < 300 {
			return nil
		}
		lastErr = fmt.Errorf("discord: webhook returned %d: %s", resp.StatusCode, string(respBody))
		if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			break
		}
	}
	return lastErr
}

func colorForType(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}
