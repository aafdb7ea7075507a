// Package errors defines the user-facing error types for the gitcred CLI.
//
// Per-helper failures never become errors: a helper that cannot run is "no
// answer" by protocol contract. These types cover the remaining cases where
// the user did something fixable and deserves a suggestion.
package errors

import (
	"fmt"
	"strings"
)

// UserError represents an error that should be shown to the user with
// helpful context.
type UserError struct {
	Message    string
	Suggestion string
	Details    string
	Err        error
}

func (e UserError) Error() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Details != "" {
		parts = append(parts, "\n  Details: "+e.Details)
	}

	if e.Suggestion != "" {
		parts = append(parts, "\n  💡 Try: "+e.Suggestion)
	}

	return strings.Join(parts, "")
}

func (e UserError) Unwrap() error {
	return e.Err
}

// CommandError represents a failure of the gitcred process itself to carry
// out a command (not a credential helper failure, which is always silent).
type CommandError struct {
	Command    string
	Message    string
	Suggestion string
}

func (e CommandError) Error() string {
	msg := fmt.Sprintf("Command '%s' failed", e.Command)
	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Suggestion != "" {
		msg += "\n  💡 " + e.Suggestion
	}

	return msg
}

// NotFound builds the error shown when discovery ends without credentials.
// It deliberately says nothing about which helpers ran or why they failed.
func NotFound(url string) error {
	return UserError{
		Message:    fmt.Sprintf("No credentials found for %s", url),
		Suggestion: "Configure a credential.helper in your git config, or store one with 'gitcred helper store'",
	}
}
