package upstream

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxRawMessage caps how much of an unstructured error body is passed back
// to the caller.
const maxRawMessage = 200

// Error is the normalized failure produced at the proxy boundary: the
// downstream's HTTP status plus a human-readable message. For 5xx responses
// the message is generic and the raw body is never carried here.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Message)
}

// ErrorExtractor maps a raw 4xx error body to a human-readable message.
// One implementation exists per downstream error-body shape.
type ErrorExtractor interface {
	Message(body []byte) string
}

// detailExtractor handles Django REST Framework bodies, typically
// {"detail": "Error message"} or {"field_name": ["Error message"]}.
type detailExtractor struct{}

func (detailExtractor) Message(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	// No "detail" field: likely per-field validation errors. Surface the
	// raw body, truncated.
	return truncate(body)
}

// messageExtractor handles NestJS bodies, typically
// {"message":"Error message","error":"Not Found","statusCode":404}.
// class-validator 400s carry "message" as an array of strings.
type messageExtractor struct{}

func (messageExtractor) Message(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Message) > 0 {
		var single string
		if json.Unmarshal(payload.Message, &single) == nil && single != "" {
			return single
		}
		var many []string
		if json.Unmarshal(payload.Message, &many) == nil && len(many) > 0 {
			return strings.Join(many, "; ")
		}
	}
	return truncate(body)
}

func truncate(body []byte) string {
	s := string(body)
	if s == "" {
		return "upstream request failed"
	}
	if len(s) > maxRawMessage {
		return s[:maxRawMessage] + "..."
	}
	return s
}
