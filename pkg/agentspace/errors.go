package agentspace

import (
	"fmt"
	"strings"
)

// Error types for the agentspace package
type (
	// ConfigurationError reports the required configuration keys that are
	// missing or empty.
	ConfigurationError struct {
		Missing []string
	}

	// AlreadyLinkedError is returned when a link is attempted while a
	// registry agent id is already recorded.
	AlreadyLinkedError struct {
		AgentID string
	}

	// NotLinkedError is returned when an operation requires a linked agent
	// and none is recorded.
	NotLinkedError struct{}

	// TransportError represents a failed request to the registry, either a
	// non-success HTTP status or a transport-level failure.
	TransportError struct {
		StatusCode int
		Body       string
		Err        error
	}
)

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

func (e *AlreadyLinkedError) Error() string {
	return fmt.Sprintf("agent already linked as %s, unlink first to re-link", e.AgentID)
}

func (e *NotLinkedError) Error() string {
	return "no agent linked"
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("registry request failed: %v", e.Err)
	}

	if e.Body != "" {
		return fmt.Sprintf("registry returned status %d: %s", e.StatusCode, e.Body)
	}

	return fmt.Sprintf("registry returned status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
