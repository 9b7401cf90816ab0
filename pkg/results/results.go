// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

// Package results defines the uniform result envelope returned by every
// client operation. Callers always receive either a success payload or a
// failure envelope with a single human-readable error string; raw vendor
// SDK errors never escape.
package results

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gofer-sh/gofer/pkg/errors"
)

// Envelope is embedded in every operation result payload.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OK returns a success envelope for embedding in result payloads.
func OK() Envelope {
	return Envelope{Success: true}
}

// Result returns the envelope itself. Embedding promotes this method, so
// every payload struct reports its envelope through [Of].
func (e Envelope) Result() Envelope {
	return e
}

// Of extracts the envelope embedded in an operation result.
func Of(v any) (Envelope, bool) {
	c, ok := v.(interface{ Result() Envelope })
	if !ok {
		return Envelope{}, false
	}
	return c.Result(), true
}

// FromError converts a typed error into a failure envelope.
//
// Not-found and validation messages pass through verbatim. The credential
// resolution family (chain exhaustion, indirection failures, missing
// credential files) is reported as an authentication failure. Vendor-reported
// failures get the API error prefix. Everything else is unexpected.
func FromError(err error) Envelope {
	switch {
	case errors.IsNotFound(err), errors.IsValidation(err):
		return Envelope{Error: message(err)}
	case errors.IsAuthenticationUnavailable(err),
		errors.IsIndirectionFailed(err),
		errors.IsCredentialSourceNotFound(err):
		return Envelope{Error: "Authentication failed: " + message(err)}
	case errors.IsVendorAPI(err):
		return Envelope{Error: "API error: " + message(err)}
	default:
		return Envelope{Error: fmt.Sprintf("Unexpected error: %v", err)}
	}
}

// message extracts the bare message from a typed error, avoiding the
// "type: message" rendering of Error().
func message(err error) string {
	if e, ok := err.(*errors.Error); ok && e.Message != "" {
		return e.Message
	}
	return err.Error()
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
