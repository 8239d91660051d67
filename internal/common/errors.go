// Package common defines shared constants and sentinel errors used across
// the monju packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrorStorageCorrupted classifies a backing file that could not be
	// decoded. Repositories recover from it and never return it to callers.
	ErrorStorageCorrupted = errors.New("storage corrupted")

	// Configuration errors.
	ErrorInvalidConfig = errors.New("invalid config")
)
