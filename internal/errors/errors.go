package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewRemoteError creates a new remote service error
func NewRemoteError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeRemote,
		Message: fmt.Sprintf("remote operation failed: %s", operation),
		Code:    "REMOTE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewRemoteRejectionError creates a remote error from an error message
// reported inside a response envelope
func NewRemoteRejectionError(operation string, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeRemote,
		Message: message,
		Code:    "REMOTE_REJECTED",
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewStorageError creates a new local storage error
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewContractError creates a new programming-contract violation error
func NewContractError(operation string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeContract,
		Message: fmt.Sprintf("contract violation in %s: %s", operation, reason),
		Code:    "CONTRACT_VIOLATION",
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if err == nil {
		return ""
	}

	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}

	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeInvalidInput:
		return appErr.Message
	case ErrorTypeNotFound:
		return appErr.Message
	case ErrorTypeRemote:
		if appErr.Cause != nil {
			return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
		}
		return appErr.Message
	case ErrorTypeStorage:
		return "a local storage problem occurred, please try again"
	default:
		return appErr.Message
	}
}
