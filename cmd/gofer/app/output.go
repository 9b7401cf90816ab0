// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gofer-sh/gofer/pkg/results"
)

// errOperationFailed signals a failure envelope that was already reported;
// it carries no further detail for cobra to print.
var errOperationFailed = errors.New("operation failed")

// readSpecInput reads a spec document from the file named in args, or from
// stdin when the argument is "-" or absent.
func readSpecInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read spec from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file: %w", err)
	}
	return data, nil
}

// emitResult prints an operation result: the envelope JSON on stdout for
// machines, a one-line summary on stderr for humans. A failure envelope
// makes the command exit nonzero.
func emitResult(cmd *cobra.Command, label string, result any) error {
	if err := results.WriteJSON(cmd.OutOrStdout(), result); err != nil {
		return err
	}

	envelope, ok := results.Of(result)
	if !ok {
		return fmt.Errorf("result payload carries no envelope")
	}
	if !envelope.Success {
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %s\n", label, envelope.Error)
		return errOperationFailed
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "✓ %s\n", label)
	return nil
}
