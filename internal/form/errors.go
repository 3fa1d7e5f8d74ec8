package form

import (
	"errors"
	"sort"

	"karirkit/internal/apiclient"
)

// Errors maps a form field name to its messages.
type Errors map[string][]string

// Add appends msg to field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Has reports whether field has at least one message.
func (e Errors) Has(field string) bool { return len(e[field]) > 0 }

// Get returns the messages of field.
func (e Errors) Get(field string) []string { return e[field] }

// Empty reports whether there are no messages at all.
func (e Errors) Empty() bool { return len(e) == 0 }

// Merge copies every message of other into e.
func (e Errors) Merge(other Errors) {
	for k, msgs := range other {
		for _, m := range msgs {
			e.Add(k, m)
		}
	}
}

// Fields returns the field names with messages, sorted.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FromAPIError lifts the API validation envelope into form errors.
// It returns nil when err carries no field errors.
func FromAPIError(err error) Errors {
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Fields) == 0 {
		return nil
	}
	out := Errors{}
	for field, msgs := range apiErr.Fields {
		for _, m := range msgs {
			out.Add(field, m)
		}
	}
	return out
}
