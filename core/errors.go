package core

import "fmt"

// ValidationError marks a malformed framework: an attack referencing an
// unknown argument, or an unparseable framework encoding. It is fatal to that
// construction and never silently repaired.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid framework: " + e.Reason
}

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigurationError marks a generator or relation invoked below its minimum
// valid size. It is fatal to that single test case, not to the run.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// NewConfigurationError builds a ConfigurationError with a formatted reason.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// AgentResponseError marks a claimed answer that cannot be parsed or mapped
// onto the framework's arguments. It surfaces as an error verdict, distinct
// from a wrong-answer fail.
type AgentResponseError struct {
	Reason string
}

func (e *AgentResponseError) Error() string {
	return "unusable agent response: " + e.Reason
}

// NewAgentResponseError builds an AgentResponseError with a formatted reason.
func NewAgentResponseError(format string, args ...any) *AgentResponseError {
	return &AgentResponseError{Reason: fmt.Sprintf(format, args...)}
}
