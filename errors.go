// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package symcrypt

import (
	"errors"
	"log/slog"
	"strings"
)

var (
	// ErrConfiguration indicates invalid construction or initialization parameters.
	ErrConfiguration = ErrCodeConfiguration.New("")

	// ErrState indicates an operation invoked before initialization or after destruction.
	ErrState = ErrCodeState.New("")

	// ErrSize indicates an input or output buffer of invalid length.
	ErrSize = ErrCodeSize.New("")

	// ErrNilCipher indicates that the provided block cipher instance is nil.
	ErrNilCipher = ErrCodeConfiguration.New("the block cipher instance can not be nil")

	// ErrNilKey indicates that the provided key container is nil.
	ErrNilKey = ErrCodeConfiguration.New("the key container can not be nil")

	// ErrBlockSize indicates an unsupported cipher block size.
	ErrBlockSize = ErrCodeConfiguration.New("invalid block size: supported sizes are 16 and 32 bytes")

	// ErrRounds indicates a rounds count that is odd or outside the legal range.
	ErrRounds = ErrCodeConfiguration.New("invalid rounds count: must be an even number between 10 and 38")

	// ErrKeySize indicates a key length matching no legal size class.
	ErrKeySize = ErrCodeConfiguration.New("invalid key length: must match a legal key size")

	// ErrIVSize indicates an initialization vector not matching the cipher block size.
	ErrIVSize = ErrCodeConfiguration.New("invalid nonce length: must equal the cipher block size")

	// ErrIkmSize indicates an invalid HKDF input-keying-material size.
	ErrIkmSize = ErrCodeConfiguration.New("invalid ikm size: must be a positive multiple of the digest output size, at most the digest block size")

	// ErrDigest indicates an unavailable digest identifier.
	ErrDigest = ErrCodeConfiguration.New("invalid digest: identifier is not available")

	// ErrNotInitialized indicates a transform call before Initialize.
	ErrNotInitialized = ErrCodeState.New("the instance has not been initialized")

	// ErrDestroyed indicates a call on a destroyed instance.
	ErrDestroyed = ErrCodeState.New("the instance has been destroyed")

	// ErrInitialized indicates a configuration change after Initialize.
	ErrInitialized = ErrCodeState.New("the instance has already been initialized")

	// ErrBlockLength indicates a block buffer whose length differs from the cipher block size.
	ErrBlockLength = ErrCodeSize.New("invalid block length: input and output must equal the cipher block size")

	// ErrTransformLength indicates a transform length that is zero or not a multiple of the block size.
	ErrTransformLength = ErrCodeSize.New("invalid transform length: must be a positive multiple of the block size")

	// ErrOutputLength indicates an output buffer shorter than the input.
	ErrOutputLength = ErrCodeSize.New("invalid output length: output must be at least as long as the input")

	// ErrParallelBlockSize indicates an invalid parallel block size assignment.
	ErrParallelBlockSize = ErrCodeSize.New("invalid parallel block size: must be a positive multiple of the parallel minimum size, at most the parallel maximum size")
)

// ErrorCode categorizes the failure classes of the library. All failures are
// deterministic functions of their input and are never retried internally.
type ErrorCode byte //nolint:errname // This is an error code, not an error type.

const (
	// ErrCodeUnknown represents an unknown error.
	ErrCodeUnknown ErrorCode = iota

	// ErrCodeConfiguration represents invalid construction or initialization parameters.
	ErrCodeConfiguration

	// ErrCodeState represents an operation incompatible with the instance lifecycle state.
	ErrCodeState

	// ErrCodeSize represents invalid buffer or length arguments.
	ErrCodeSize
)

// New creates a new Error with the given message and wrapped errors.
func (c ErrorCode) New(message string, errs ...error) *Error {
	if message == "" {
		message = strings.ReplaceAll(c.String(), "_", " ")
	}

	return &Error{
		Code:    c,
		Message: message,
		Err:     errors.Join(errs...),
	}
}

// String returns the string representation of the ErrorCode.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeUnknown:
		return "unknown_error"
	case ErrCodeConfiguration:
		return "configuration_error"
	case ErrCodeState:
		return "state_error"
	case ErrCodeSize:
		return "size_error"
	default:
		return "unknown_error"
	}
}

// Error implements the error interface for the ErrorCode type.
func (c ErrorCode) Error() string {
	return c.String()
}

// Is implements the errors.Is method for the ErrorCode type.
// It allows checking if the error is of a specific ErrorCode.
func (c ErrorCode) Is(target error) bool {
	var errCode ErrorCode
	if errors.As(target, &errCode) {
		return byte(c) == byte(errCode)
	}

	var symErr *Error
	if errors.As(target, &symErr) {
		return byte(c) == byte(symErr.Code)
	}

	return false
}

// As implements the errors.As method for the ErrorCode type.
func (c ErrorCode) As(target any) bool {
	switch t := target.(type) {
	case ErrorCode:
		return true
	case *ErrorCode:
		*t = c
		return true
	default:
		return false
	}
}

// Error represents a failure in the library, carrying its ErrorCode class.
type Error struct {
	Err     error
	Message string
	Code    ErrorCode
}

// Error implements the error interface for the Error type. By convention, only the concise form of the
// current error is returned, without the cause. The cause can be retrieved with the Unwrap() method.
func (e *Error) Error() string { return e.Message }

// Unwrap implements the errors.Unwrap method for the Error type. It allows retrieving the underlying error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Join wraps the provided errors into the current error.
func (e *Error) Join(errs ...error) error {
	return errors.Join(e, errors.Join(errs...))
}

// LogValue implements the slog.LogValuer interface for the Error type.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("code", int(e.Code)),
		slog.String("code_name", e.Code.String()),
		slog.String("message", e.Message),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.Any("error", e.Err))
	}

	return slog.GroupValue(attrs...)
}

// Is implements the errors.Is method for the Error type. It allows checking if the error is of a specific ErrorCode.
func (e *Error) Is(target error) bool {
	var errCode ErrorCode
	if errors.As(target, &errCode) {
		return byte(e.Code) == byte(errCode)
	}

	var symErr *Error
	if errors.As(target, &symErr) {
		return byte(e.Code) == byte(symErr.Code) && strings.EqualFold(e.Message, symErr.Message)
	}

	return false
}

// As implements the errors.As method for the Error type. It allows type assertion to specific error types.
func (e *Error) As(target any) bool {
	switch t := target.(type) {
	case *ErrorCode:
		*t = e.Code
		return true
	case **Error:
		*t = e
		return true
	default:
		return false
	}
}
