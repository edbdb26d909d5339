package jira

import "fmt"

// TransportError indicates the Jira host could not be reached at all
// (DNS, connection, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("jira transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError indicates Jira answered with a non-success status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira API returned %d: %s", e.StatusCode, e.Body)
}

// DecodeError indicates the search response did not match the expected
// schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("parse search response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
