// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

package github_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	envmocks "github.com/gofer-sh/gofer/pkg/env/mocks"
	"github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/github"
	"github.com/gofer-sh/gofer/pkg/secrets/keyring"
	secretsmocks "github.com/gofer-sh/gofer/pkg/secrets/mocks"
)

// envReaderFor returns a reader serving the given variables; everything else
// reads as unset.
func envReaderFor(t *testing.T, vars map[string]string) *envmocks.MockReader {
	t.Helper()
	mock := envmocks.NewMockReader(gomock.NewController(t))
	mock.EXPECT().Getenv(gomock.Any()).DoAndReturn(func(key string) string {
		return vars[key]
	}).AnyTimes()
	return mock
}

type fakeKeyring struct {
	entries map[string]string
}

func (f *fakeKeyring) Set(service, key, value string) error {
	f.entries[service+"/"+key] = value
	return nil
}

func (f *fakeKeyring) Get(service, key string) (string, error) {
	value, ok := f.entries[service+"/"+key]
	if !ok {
		return "", keyring.ErrNotFound
	}
	return value, nil
}

func (*fakeKeyring) Delete(_, _ string) error { return nil }
func (*fakeKeyring) DeleteAll(_ string) error { return nil }
func (*fakeKeyring) IsAvailable() bool        { return true }
func (*fakeKeyring) Name() string             { return "Fake Keyring" }

func TestNewTokenChain_Order(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		vars        map[string]string
		configOrder []string
		want        []string
	}{
		{
			name: "default order",
			want: []string{"env", "gh", "keychain", "1password"},
		},
		{
			name: "override variable wins",
			vars: map[string]string{
				"GITHUB_TOKEN_SOURCES": "1Password, ENV",
			},
			want: []string{"1password", "env"},
		},
		{
			name:        "config order applies when no override",
			configOrder: []string{"keychain", "env"},
			want:        []string{"keychain", "env"},
		},
		{
			name: "override beats config order",
			vars: map[string]string{
				"GITHUB_TOKEN_SOURCES": "env",
			},
			configOrder: []string{"keychain"},
			want:        []string{"env"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			chain := github.NewTokenChain(envReaderFor(t, tt.vars),
				&fakeKeyring{entries: map[string]string{}},
				secretsmocks.NewMockOPReader(ctrl), tt.configOrder)
			assert.Equal(t, tt.want, chain.Order())
		})
	}
}

func TestNewTokenChain_Resolve(t *testing.T) {
	t.Run("GH_TOKEN wins over GITHUB_TOKEN", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "env",
			"GH_TOKEN":             "ghp_primary",
			"GITHUB_TOKEN":         "ghp_secondary",
		})

		chain := github.NewTokenChain(envReader, &fakeKeyring{entries: map[string]string{}},
			secretsmocks.NewMockOPReader(ctrl), nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_primary", value)
	})

	t.Run("GITHUB_TOKEN backs up GH_TOKEN", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "env",
			"GITHUB_TOKEN":         "ghp_secondary",
		})

		chain := github.NewTokenChain(envReader, &fakeKeyring{entries: map[string]string{}},
			secretsmocks.NewMockOPReader(ctrl), nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_secondary", value)
	})

	t.Run("gh CLI source honors GH_TOKEN", func(t *testing.T) {
		// TokenForHost reads the process environment directly.
		t.Setenv("GH_TOKEN", "ghp_from_cli")

		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "gh",
		})

		chain := github.NewTokenChain(envReader, &fakeKeyring{entries: map[string]string{}},
			secretsmocks.NewMockOPReader(ctrl), nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_from_cli", value)
	})

	t.Run("keychain defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "keychain",
		})
		kr := &fakeKeyring{entries: map[string]string{
			"GitHub Token/default": "ghp_keychain",
		}}

		chain := github.NewTokenChain(envReader, kr, secretsmocks.NewMockOPReader(ctrl), nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_keychain", value)
	})

	t.Run("keychain service and account overrides", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES":    "keychain",
			"GITHUB_KEYCHAIN_SERVICE": "Work GitHub",
			"GITHUB_KEYCHAIN_ACCOUNT": "bot",
			"USER":                    "alice",
		})
		kr := &fakeKeyring{entries: map[string]string{
			"Work GitHub/bot": "ghp_work",
		}}

		chain := github.NewTokenChain(envReader, kr, secretsmocks.NewMockOPReader(ctrl), nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_work", value)
	})

	t.Run("keychain account falls back to USER", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "keychain",
			"USER":                 "alice",
		})
		kr := &fakeKeyring{entries: map[string]string{
			"GitHub Token/alice": "ghp_alice",
		}}

		chain := github.NewTokenChain(envReader, kr, secretsmocks.NewMockOPReader(ctrl), nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_alice", value)
	})

	t.Run("1password default reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "1password",
		})
		op := secretsmocks.NewMockOPReader(ctrl)
		op.EXPECT().Read(gomock.Any(), "op://Personal/GitHub/credential").
			Return("ghp_op", nil).Times(1)

		chain := github.NewTokenChain(envReader, &fakeKeyring{entries: map[string]string{}}, op, nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_op", value)
	})

	t.Run("1password reference override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES":  "1password",
			"GITHUB_1PASSWORD_PATH": "op://Work/GitHub Bot/token",
		})
		op := secretsmocks.NewMockOPReader(ctrl)
		op.EXPECT().Read(gomock.Any(), "op://Work/GitHub Bot/token").
			Return("ghp_bot", nil).Times(1)

		chain := github.NewTokenChain(envReader, &fakeKeyring{entries: map[string]string{}}, op, nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ghp_bot", value)
	})

	t.Run("exhaustion lists sources and override variable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		// The gh source is left out so the test never consults the real
		// gh CLI configuration.
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "env,keychain,1password",
		})
		op := secretsmocks.NewMockOPReader(ctrl)
		op.EXPECT().Read(gomock.Any(), gomock.Any()).
			Return("", fmt.Errorf("op CLI not installed")).AnyTimes()

		chain := github.NewTokenChain(envReader, &fakeKeyring{entries: map[string]string{}}, op, nil)
		_, err := chain.Resolve(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsAuthenticationUnavailable(err))
		assert.Contains(t, err.Error(), "no GitHub token found")
		assert.Contains(t, err.Error(), "tried: env, keychain, 1password")
		assert.Contains(t, err.Error(), "GITHUB_TOKEN_SOURCES")
	})
}

func TestResolveToken(t *testing.T) {
	t.Run("reports the winning source", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "env,keychain",
			"GH_TOKEN":             "ghp_env",
		})

		token, err := github.ResolveToken(context.Background(), envReader,
			&fakeKeyring{entries: map[string]string{}}, secretsmocks.NewMockOPReader(ctrl), nil)
		require.NoError(t, err)
		assert.Equal(t, "ghp_env", token.Value)
		assert.Equal(t, "env", token.Source)
	})

	t.Run("dereferences an op reference in the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "env",
			"GH_TOKEN":             "op://Work/GitHub/token",
		})
		op := secretsmocks.NewMockOPReader(ctrl)
		op.EXPECT().Read(gomock.Any(), "op://Work/GitHub/token").
			Return("  ghp_real\n", nil).Times(1)

		token, err := github.ResolveToken(context.Background(), envReader,
			&fakeKeyring{entries: map[string]string{}}, op, nil)
		require.NoError(t, err)
		assert.Equal(t, "ghp_real", token.Value)
		assert.Equal(t, "env", token.Source)
	})

	t.Run("failed dereference surfaces as indirection error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "env",
			"GH_TOKEN":             "op://Work/GitHub/token",
		})
		op := secretsmocks.NewMockOPReader(ctrl)
		op.EXPECT().Read(gomock.Any(), "op://Work/GitHub/token").
			Return("", fmt.Errorf("no service account configured")).Times(1)

		_, err := github.ResolveToken(context.Background(), envReader,
			&fakeKeyring{entries: map[string]string{}}, op, nil)
		require.Error(t, err)
		assert.True(t, errors.IsIndirectionFailed(err))
		assert.Contains(t, err.Error(), "op://Work/GitHub/token")
	})

	t.Run("exhaustion propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"GITHUB_TOKEN_SOURCES": "env",
		})

		_, err := github.ResolveToken(context.Background(), envReader,
			&fakeKeyring{entries: map[string]string{}}, secretsmocks.NewMockOPReader(ctrl), nil)
		require.Error(t, err)
		assert.True(t, errors.IsAuthenticationUnavailable(err))
	})
}
