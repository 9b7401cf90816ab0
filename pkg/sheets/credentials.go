// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/gofer-sh/gofer/pkg/env"
	"github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/secrets"
	"github.com/gofer-sh/gofer/pkg/secrets/keyring"
)

// CredentialSourcesVar overrides the credential lookup order for Google
// Sheets. Its value is a comma separated list of source keys.
const CredentialSourcesVar = "GOOGLE_SHEETS_CREDENTIAL_SOURCES"

const (
	keychainService = "Google Sheets Service Account"
	defaultOPRef    = "op://Personal/Google Sheets Service Account/credential"
)

// defaultSourceOrder is the built-in lookup order when neither the override
// variable nor the config file specifies one.
var defaultSourceOrder = []string{"json", "env", "keychain", "1password"}

// NewCredentialChain builds the credential chain for Google Sheets.
// configOrder comes from the config file and may be empty.
func NewCredentialChain(envReader env.Reader, kr keyring.Provider, op secrets.OPReader, configOrder []string) *secrets.Chain {
	account := strings.TrimSpace(envReader.Getenv("USER"))
	if account == "" {
		account = "default"
	}

	opRef := strings.TrimSpace(envReader.Getenv("GOOGLE_SHEETS_1PASSWORD_PATH"))
	if opRef == "" {
		opRef = defaultOPRef
	}

	return secrets.NewChainWithEnv("Google Sheets credentials", CredentialSourcesVar, defaultSourceOrder, envReader).
		WithConfigOrder(configOrder).
		Register("json", secrets.EnvSource(envReader, "GOOGLE_SHEETS_SERVICE_ACCOUNT_JSON")).
		Register("env", secrets.EnvSource(envReader, "GOOGLE_SHEETS_SERVICE_ACCOUNT")).
		Register("keychain", secrets.KeyringSource(kr, keychainService, account)).
		Register("1password", secrets.OnePasswordSource(op, opRef))
}

// Materialize turns a resolved credential value into the bytes of a service
// account document. The value may be a 1Password reference (dereferenced at
// most once), an inline JSON document, or a path to a JSON file. The raw
// reference itself is never parsed as JSON or read from disk.
func Materialize(ctx context.Context, op secrets.OPReader, value string) ([]byte, error) {
	expanded, err := secrets.Expand(ctx, op, value)
	if err != nil {
		return nil, err
	}

	if gjson.Valid(expanded) {
		return []byte(expanded), nil
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewCredentialSourceNotFoundError(
				fmt.Sprintf("Service account file not found: %s", expanded), err)
		}
		return nil, errors.NewAuthenticationUnavailableError(
			fmt.Sprintf("Failed to load service account credentials: %v", err), err)
	}
	return data, nil
}
