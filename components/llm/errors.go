package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialMissing is returned before any dial when the API key is blank
	ErrCredentialMissing = errors.New("api key is required")
	// ErrUnknownProvider is returned for a provider without a transport
	ErrUnknownProvider = errors.New("unknown provider")
)

// TransportError wraps any failure raised while dialing or calling the remote model
type TransportError struct {
	Provider Provider
	Model    string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Model, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
