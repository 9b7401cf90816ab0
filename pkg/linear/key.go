// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

package linear

import (
	"context"
	"strings"

	"github.com/gofer-sh/gofer/pkg/env"
	"github.com/gofer-sh/gofer/pkg/secrets"
	"github.com/gofer-sh/gofer/pkg/secrets/keyring"
)

// KeySourcesVar overrides the API key lookup order for Linear. Its value is
// a comma separated list of source keys.
const KeySourcesVar = "LINEAR_API_SOURCES"

const (
	defaultKeychainService = "Linear API Key"
	defaultOPRef           = "op://Personal/Linear/credential"
)

// defaultKeyOrder is the built-in lookup order when neither the override
// variable nor the config file specifies one.
var defaultKeyOrder = []string{"env", "keychain", "1password"}

// NewKeyChain builds the API key chain for Linear. configOrder comes from
// the config file and may be empty.
func NewKeyChain(envReader env.Reader, kr keyring.Provider, op secrets.OPReader, configOrder []string) *secrets.Chain {
	service := strings.TrimSpace(envReader.Getenv("LINEAR_KEYCHAIN_SERVICE"))
	if service == "" {
		service = defaultKeychainService
	}
	account := strings.TrimSpace(envReader.Getenv("LINEAR_KEYCHAIN_ACCOUNT"))
	if account == "" {
		account = strings.TrimSpace(envReader.Getenv("USER"))
	}
	if account == "" {
		account = "default"
	}

	opRef := strings.TrimSpace(envReader.Getenv("LINEAR_1PASSWORD_PATH"))
	if opRef == "" {
		opRef = defaultOPRef
	}

	return secrets.NewChainWithEnv("Linear API key", KeySourcesVar, defaultKeyOrder, envReader).
		WithConfigOrder(configOrder).
		Register("env", secrets.EnvSource(envReader, "LINEAR_API_KEY")).
		Register("keychain", secrets.KeyringSource(kr, service, account)).
		Register("1password", secrets.OnePasswordSource(op, opRef))
}

// ResolveKey walks the key chain and dereferences a 1Password reference in
// the winning value.
func ResolveKey(ctx context.Context, envReader env.Reader, kr keyring.Provider, op secrets.OPReader, configOrder []string) (string, error) {
	value, err := NewKeyChain(envReader, kr, op, configOrder).Resolve(ctx)
	if err != nil {
		return "", err
	}
	return secrets.Expand(ctx, op, value)
}
