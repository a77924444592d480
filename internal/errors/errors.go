// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package errors

import "fmt"

// ErrorCode identifies a class of application error.
type ErrorCode string

const (
	// Repository errors
	ErrCodeInvalidRepository ErrorCode = "INVALID_REPOSITORY"
	ErrCodeInvalidReference  ErrorCode = "INVALID_REFERENCE"

	// Template errors
	ErrCodeTemplateNotFound   ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeMissingPlaceholder ErrorCode = "MISSING_PLACEHOLDER"
	ErrCodePlatformNotFound   ErrorCode = "PLATFORM_NOT_FOUND"

	// Backend errors
	ErrCodeGeneration      ErrorCode = "GENERATION_FAILED"
	ErrCodeProviderUnknown ErrorCode = "PROVIDER_UNKNOWN"
	ErrCodeMissingAPIKey   ErrorCode = "MISSING_API_KEY"

	// Glue errors
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
	ErrCodeCLI    ErrorCode = "CLI_ERROR"
)

// AppError carries a code, a message, an optional cause, and an optional
// remediation hint shown to the user.
type AppError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithHint attaches a remediation hint and returns the error for chaining.
func (e *AppError) WithHint(hint string) *AppError {
	e.Hint = hint
	return e
}

// New creates an error with the given code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates an error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates an existing error with a code and message.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// NewCLIError creates a generic command-line error.
func NewCLIError(message string) *AppError {
	return New(ErrCodeCLI, message)
}

// HasCode reports whether err is an AppError with the given code anywhere
// in its chain.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if app, ok := err.(*AppError); ok && app.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
