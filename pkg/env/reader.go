// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

// Package env abstracts access to environment variables so that code
// consulting them can be tested with injected readers.
package env

import "os"

//go:generate mockgen -destination=mocks/mock_reader.go -package=mocks -source=reader.go Reader

// Reader reads environment variables.
type Reader interface {
	// Getenv returns the value of the named environment variable,
	// or the empty string if it is unset.
	Getenv(key string) string
}

// OSReader reads environment variables from the process environment.
type OSReader struct{}

// Getenv returns the value of the named environment variable.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}
