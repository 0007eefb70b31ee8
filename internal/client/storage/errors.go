package storage

import "errors"

// Common client storage errors
var (
	// ErrRecordNotFound indicates that transaction record was not found
	ErrRecordNotFound = errors.New("transaction record not found")

	// ErrMediaNotFound indicates that media metadata was not found
	ErrMediaNotFound = errors.New("media metadata not found")

	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session data not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
