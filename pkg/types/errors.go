// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error kinds. Every fatal error returned by the pipeline wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	// ErrConfiguration marks a malformed setting or an incomplete template bundle.
	ErrConfiguration = errors.New("configuration error")

	// ErrNotFound marks a required directory or picture that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTarget marks a path that exists but has the wrong kind.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrInvalidSource marks a discovered description path that is not a regular file.
	ErrInvalidSource = errors.New("invalid source")

	// ErrValidation marks a description file that does not match the volunteer schema.
	ErrValidation = errors.New("validation error")

	// ErrIO marks a read or write failure not otherwise classified.
	ErrIO = errors.New("i/o error")

	// ErrRender marks a failure reported by the templating engine.
	ErrRender = errors.New("render error")
)
