// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

package linear_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	envmocks "github.com/gofer-sh/gofer/pkg/env/mocks"
	"github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/linear"
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

func TestNewKeyChain_Order(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		vars        map[string]string
		configOrder []string
		want        []string
	}{
		{
			name: "default order",
			want: []string{"env", "keychain", "1password"},
		},
		{
			name: "override variable wins",
			vars: map[string]string{
				"LINEAR_API_SOURCES": "Keychain, ENV",
			},
			want: []string{"keychain", "env"},
		},
		{
			name:        "config order applies when no override",
			configOrder: []string{"1password", "env"},
			want:        []string{"1password", "env"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			chain := linear.NewKeyChain(envReaderFor(t, tt.vars),
				&fakeKeyring{entries: map[string]string{}},
				secretsmocks.NewMockOPReader(ctrl), tt.configOrder)
			assert.Equal(t, tt.want, chain.Order())
		})
	}
}

func TestNewKeyChain_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("environment variable wins", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"LINEAR_API_KEY": "lin_api_env",
		})

		chain := linear.NewKeyChain(envReader, &fakeKeyring{entries: map[string]string{}},
			secretsmocks.NewMockOPReader(ctrl), nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "lin_api_env", value)
	})

	t.Run("keychain defaults", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"LINEAR_API_SOURCES": "keychain",
		})
		kr := &fakeKeyring{entries: map[string]string{
			"Linear API Key/default": "lin_api_keychain",
		}}

		chain := linear.NewKeyChain(envReader, kr, secretsmocks.NewMockOPReader(ctrl), nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "lin_api_keychain", value)
	})

	t.Run("keychain service and account overrides", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"LINEAR_API_SOURCES":      "keychain",
			"LINEAR_KEYCHAIN_SERVICE": "Work Linear",
			"LINEAR_KEYCHAIN_ACCOUNT": "bot",
			"USER":                    "alice",
		})
		kr := &fakeKeyring{entries: map[string]string{
			"Work Linear/bot": "lin_api_work",
		}}

		chain := linear.NewKeyChain(envReader, kr, secretsmocks.NewMockOPReader(ctrl), nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "lin_api_work", value)
	})

	t.Run("1password default reference", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"LINEAR_API_SOURCES": "1password",
		})
		op := secretsmocks.NewMockOPReader(ctrl)
		op.EXPECT().Read(gomock.Any(), "op://Personal/Linear/credential").
			Return("lin_api_op", nil).Times(1)

		chain := linear.NewKeyChain(envReader, &fakeKeyring{entries: map[string]string{}}, op, nil)
		value, err := chain.Resolve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "lin_api_op", value)
	})

	t.Run("exhaustion lists sources and override variable", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, nil)
		op := secretsmocks.NewMockOPReader(ctrl)
		op.EXPECT().Read(gomock.Any(), gomock.Any()).
			Return("", fmt.Errorf("op CLI not installed")).AnyTimes()

		chain := linear.NewKeyChain(envReader, &fakeKeyring{entries: map[string]string{}}, op, nil)
		_, err := chain.Resolve(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsAuthenticationUnavailable(err))
		assert.Contains(t, err.Error(), "no Linear API key found")
		assert.Contains(t, err.Error(), "tried: env, keychain, 1password")
		assert.Contains(t, err.Error(), "LINEAR_API_SOURCES")
	})
}

func TestResolveKey(t *testing.T) {
	t.Parallel()

	t.Run("dereferences an op reference in the winner", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"LINEAR_API_SOURCES": "env",
			"LINEAR_API_KEY":     "op://Work/Linear/credential",
		})
		op := secretsmocks.NewMockOPReader(ctrl)
		op.EXPECT().Read(gomock.Any(), "op://Work/Linear/credential").
			Return("lin_api_real\n", nil).Times(1)

		key, err := linear.ResolveKey(context.Background(), envReader,
			&fakeKeyring{entries: map[string]string{}}, op, nil)
		require.NoError(t, err)
		assert.Equal(t, "lin_api_real", key)
	})

	t.Run("exhaustion propagates", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		envReader := envReaderFor(t, map[string]string{
			"LINEAR_API_SOURCES": "env",
		})

		_, err := linear.ResolveKey(context.Background(), envReader,
			&fakeKeyring{entries: map[string]string{}}, secretsmocks.NewMockOPReader(ctrl), nil)
		require.Error(t, err)
		assert.True(t, errors.IsAuthenticationUnavailable(err))
	})
}
