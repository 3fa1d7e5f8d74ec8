package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrEmptyResponse is returned when a single-resource endpoint answers without a body.
var ErrEmptyResponse = errors.New("empty response from api")

// APIError is a non-2xx answer from the KarirKit API.
// Fields is populated from the {errors: {field: [messages]}} validation envelope;
// Message from the {message: "..."} envelope.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("api status %d: %s (fields: %s)", e.Status, e.Message, strings.Join(keys, ", "))
	}
	return fmt.Sprintf("api status %d: %s", e.Status, e.Message)
}

type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func decodeError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var eb errorBody
	if len(body) > 0 && json.Unmarshal(body, &eb) == nil {
		apiErr.Message = eb.Message
		if len(eb.Errors) > 0 {
			apiErr.Fields = eb.Errors
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.ToLower(http.StatusText(status))
	}
	return apiErr
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsUnauthorized reports whether the API rejected the caller's credentials.
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

// IsForbidden reports whether the caller lacks permission for the resource.
func IsForbidden(err error) bool {
	return statusOf(err) == http.StatusForbidden
}

// IsNotFound reports whether the API answered 404.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsValidation reports whether the API returned field-level validation errors.
func IsValidation(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return len(apiErr.Fields) > 0
	}
	return false
}
