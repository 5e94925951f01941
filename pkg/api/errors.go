package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindAuthenticationFailed Kind = "AUTHENTICATION_FAILED"
	KindAccessDenied         Kind = "ACCESS_DENIED"
	KindUserNotFound         Kind = "USER_NOT_FOUND"
	KindServerError          Kind = "SERVER_ERROR"
	KindRequestFailed        Kind = "REQUEST_FAILED"
)

const defaultFailureMessage = "API request failed"

var (
	ErrAuthenticationFailed = &Error{Kind: KindAuthenticationFailed}
	ErrAccessDenied         = &Error{Kind: KindAccessDenied}
	ErrUserNotFound         = &Error{Kind: KindUserNotFound}
	ErrServerError          = &Error{Kind: KindServerError}
	ErrRequestFailed        = &Error{Kind: KindRequestFailed}

	ErrUnknownEndpoint = errors.New("api: unknown endpoint")
	ErrMissingParam    = errors.New("api: missing path parameter")
)

// Error is returned for every non-2xx response.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Body    json.RawMessage
}

func (e *Error) Error() string {
	if e.Kind == KindRequestFailed {
		if e.Message == "" {
			return defaultFailureMessage
		}
		return e.Message
	}
	return string(e.Kind)
}

// Is matches on Kind so the package sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf reports the taxonomy kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return "", false
}

// KindForStatus maps a failure status code onto the closed taxonomy.
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindAuthenticationFailed
	case status == http.StatusForbidden:
		return KindAccessDenied
	case status == http.StatusNotFound:
		return KindUserNotFound
	case status >= http.StatusInternalServerError:
		return KindServerError
	default:
		return KindRequestFailed
	}
}

// newStatusError builds the error for a non-2xx response. Payloads that are
// not a JSON object are replaced by {"error":"HTTP <status>: <text>"}.
func newStatusError(status int, statusText string, body []byte) *Error {
	raw := json.RawMessage(body)
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		synthesized := fmt.Sprintf("HTTP %d: %s", status, statusText)
		raw, _ = json.Marshal(map[string]string{"error": synthesized})
		fields = map[string]json.RawMessage{"error": mustQuote(synthesized)}
	}

	message := stringField(fields, "message")
	if message == "" {
		message = stringField(fields, "error")
	}

	return &Error{
		Kind:    KindForStatus(status),
		Status:  status,
		Message: message,
		Body:    raw,
	}
}

func stringField(fields map[string]json.RawMessage, key string) string {
	var value string
	if raw, ok := fields[key]; ok {
		_ = json.Unmarshal(raw, &value)
	}
	return value
}

func mustQuote(value string) json.RawMessage {
	data, _ := json.Marshal(value)
	return data
}
