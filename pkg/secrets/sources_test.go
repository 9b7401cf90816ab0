package secrets_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	envmocks "github.com/gofer-sh/gofer/pkg/env/mocks"
	"github.com/gofer-sh/gofer/pkg/secrets"
	"github.com/gofer-sh/gofer/pkg/secrets/keyring"
	"github.com/gofer-sh/gofer/pkg/secrets/mocks"
)

// fakeKeyring is a minimal in-memory keyring.Provider for source tests.
type fakeKeyring struct {
	entries map[string]string // "service/key" -> value
	err     error
}

func (f *fakeKeyring) Set(service, key, value string) error {
	f.entries[service+"/"+key] = value
	return nil
}

func (f *fakeKeyring) Get(service, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	value, ok := f.entries[service+"/"+key]
	if !ok {
		return "", keyring.ErrNotFound
	}
	return value, nil
}

func (f *fakeKeyring) Delete(service, key string) error {
	delete(f.entries, service+"/"+key)
	return nil
}

func (f *fakeKeyring) DeleteAll(_ string) error { return nil }
func (f *fakeKeyring) IsAvailable() bool        { return true }
func (f *fakeKeyring) Name() string             { return "Fake Keyring" }

func TestEnvSource(t *testing.T) {
	t.Parallel()

	t.Run("first non-empty variable wins", func(t *testing.T) {
		t.Parallel()
		envReader := envmocks.NewMockReader(gomock.NewController(t))
		envReader.EXPECT().Getenv("GH_TOKEN").Return("")
		envReader.EXPECT().Getenv("GITHUB_TOKEN").Return(" ghp_abc123 ")

		source := secrets.EnvSource(envReader, "GH_TOKEN", "GITHUB_TOKEN")
		assert.Equal(t, "ghp_abc123", source.Lookup(context.Background()))
	})

	t.Run("all empty reads as absent", func(t *testing.T) {
		t.Parallel()
		envReader := envmocks.NewMockReader(gomock.NewController(t))
		envReader.EXPECT().Getenv(gomock.Any()).Return("").Times(2)

		source := secrets.EnvSource(envReader, "GH_TOKEN", "GITHUB_TOKEN")
		assert.Empty(t, source.Lookup(context.Background()))
	})

	t.Run("hint names the variables", func(t *testing.T) {
		t.Parallel()
		envReader := envmocks.NewMockReader(gomock.NewController(t))

		source := secrets.EnvSource(envReader, "GH_TOKEN", "GITHUB_TOKEN")
		assert.Contains(t, source.Hint, "GH_TOKEN or GITHUB_TOKEN")
	})
}

func TestKeyringSource(t *testing.T) {
	t.Parallel()

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()
		kr := &fakeKeyring{entries: map[string]string{"GitHub Token/default": "keychain-token"}}

		source := secrets.KeyringSource(kr, "GitHub Token", "default")
		assert.Equal(t, "keychain-token", source.Lookup(context.Background()))
	})

	t.Run("missing entry reads as absent", func(t *testing.T) {
		t.Parallel()
		kr := &fakeKeyring{entries: map[string]string{}}

		source := secrets.KeyringSource(kr, "GitHub Token", "default")
		assert.Empty(t, source.Lookup(context.Background()))
	})

	t.Run("backend failure reads as absent", func(t *testing.T) {
		t.Parallel()
		kr := &fakeKeyring{err: fmt.Errorf("no keyring backend available")}

		source := secrets.KeyringSource(kr, "GitHub Token", "default")
		assert.Empty(t, source.Lookup(context.Background()))
	})

	t.Run("hint names the service", func(t *testing.T) {
		t.Parallel()
		kr := &fakeKeyring{entries: map[string]string{}}

		source := secrets.KeyringSource(kr, "Linear API Key", "default")
		assert.Contains(t, source.Hint, `"Linear API Key"`)
	})
}

func TestOnePasswordSource(t *testing.T) {
	t.Parallel()

	t.Run("returns resolved secret", func(t *testing.T) {
		t.Parallel()
		op := mocks.NewMockOPReader(gomock.NewController(t))
		op.EXPECT().
			Read(gomock.Any(), "op://Personal/GitHub/credential").
			Return("op-token", nil)

		source := secrets.OnePasswordSource(op, "op://Personal/GitHub/credential")
		assert.Equal(t, "op-token", source.Lookup(context.Background()))
	})

	t.Run("reader failure reads as absent", func(t *testing.T) {
		t.Parallel()
		op := mocks.NewMockOPReader(gomock.NewController(t))
		op.EXPECT().
			Read(gomock.Any(), "op://Personal/GitHub/credential").
			Return("", fmt.Errorf("1Password CLI not found"))

		source := secrets.OnePasswordSource(op, "op://Personal/GitHub/credential")
		assert.Empty(t, source.Lookup(context.Background()))
	})

	t.Run("hint names the reference", func(t *testing.T) {
		t.Parallel()
		op := mocks.NewMockOPReader(gomock.NewController(t))

		source := secrets.OnePasswordSource(op, "op://Personal/GitHub/credential")
		assert.Contains(t, source.Hint, "op://Personal/GitHub/credential")
	})
}
