// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"strings"

	ghAuth "github.com/cli/go-gh/v2/pkg/auth"

	"github.com/gofer-sh/gofer/pkg/env"
	"github.com/gofer-sh/gofer/pkg/secrets"
	"github.com/gofer-sh/gofer/pkg/secrets/keyring"
)

// TokenSourcesVar overrides the token lookup order for GitHub. Its value is
// a comma separated list of source keys.
const TokenSourcesVar = "GITHUB_TOKEN_SOURCES"

const (
	githubHost             = "github.com"
	defaultKeychainService = "GitHub Token"
	defaultOPRef           = "op://Personal/GitHub/credential"
)

// defaultTokenOrder is the built-in lookup order when neither the override
// variable nor the config file specifies one.
var defaultTokenOrder = []string{"env", "gh", "keychain", "1password"}

// Token is a resolved GitHub token together with the key of the chain source
// that supplied it.
type Token struct {
	Value  string
	Source string
}

// NewTokenChain builds the token chain for GitHub. configOrder comes from
// the config file and may be empty.
func NewTokenChain(envReader env.Reader, kr keyring.Provider, op secrets.OPReader, configOrder []string) *secrets.Chain {
	service := strings.TrimSpace(envReader.Getenv("GITHUB_KEYCHAIN_SERVICE"))
	if service == "" {
		service = defaultKeychainService
	}
	account := strings.TrimSpace(envReader.Getenv("GITHUB_KEYCHAIN_ACCOUNT"))
	if account == "" {
		account = strings.TrimSpace(envReader.Getenv("USER"))
	}
	if account == "" {
		account = "default"
	}

	opRef := strings.TrimSpace(envReader.Getenv("GITHUB_1PASSWORD_PATH"))
	if opRef == "" {
		opRef = defaultOPRef
	}

	return secrets.NewChainWithEnv("GitHub token", TokenSourcesVar, defaultTokenOrder, envReader).
		WithConfigOrder(configOrder).
		Register("env", secrets.EnvSource(envReader, "GH_TOKEN", "GITHUB_TOKEN")).
		Register("gh", ghCLISource()).
		Register("keychain", secrets.KeyringSource(kr, service, account)).
		Register("1password", secrets.OnePasswordSource(op, opRef))
}

// ghCLISource reads the token the gh CLI stored for github.com. TokenForHost
// also consults GH_TOKEN and GITHUB_TOKEN, so this source can surface an
// environment token even when the env source is disabled by an override.
func ghCLISource() secrets.Source {
	return secrets.Source{
		Lookup: func(_ context.Context) string {
			token, _ := ghAuth.TokenForHost(githubHost)
			return token
		},
		Hint: "sign in with the gh CLI (gh auth login)",
	}
}

// ResolveToken walks the token chain and dereferences a 1Password reference
// in the winning value.
func ResolveToken(ctx context.Context, envReader env.Reader, kr keyring.Provider, op secrets.OPReader, configOrder []string) (Token, error) {
	value, source, err := NewTokenChain(envReader, kr, op, configOrder).ResolveWithSource(ctx)
	if err != nil {
		return Token{}, err
	}
	value, err = secrets.Expand(ctx, op, value)
	if err != nil {
		return Token{}, err
	}
	return Token{Value: value, Source: source}, nil
}
