package googleads

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response from the Google Ads API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("googleads: API returned %d (%s): %s", e.StatusCode, e.Status, e.Message)
}

type apiErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return &APIError{
			StatusCode: statusCode,
			Status:     parsed.Error.Status,
			Message:    parsed.Error.Message,
		}
	}
	return &APIError{StatusCode: statusCode, Message: string(body)}
}
