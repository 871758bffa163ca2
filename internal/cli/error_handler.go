package cli

import (
	"fmt"

	"timebot/internal/errors"
	"timebot/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// StoreFailure converts the store's recorded error message into a command
// error. The store never throws past its boundary, so failed operations are
// reported through the boolean result plus the error slot.
func (eh *ErrorHandler) StoreFailure(operation string, storeMessage string) error {
	if storeMessage == "" {
		return fmt.Errorf("failed to %s", operation)
	}
	return fmt.Errorf("failed to %s: %s", operation, storeMessage)
}
