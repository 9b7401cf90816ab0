package secrets

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofer-sh/gofer/pkg/env"
	"github.com/gofer-sh/gofer/pkg/secrets/keyring"
)

// EnvSource reads the first non-empty value of the named environment
// variables, trimmed.
func EnvSource(r env.Reader, names ...string) Source {
	return Source{
		Lookup: func(_ context.Context) string {
			for _, name := range names {
				if value := strings.TrimSpace(r.Getenv(name)); value != "" {
					return value
				}
			}
			return ""
		},
		Hint: "set the " + strings.Join(names, " or ") + " environment variable",
	}
}

// KeyringSource reads a credential from the OS keychain. A missing entry or
// an unavailable backend reads as absent.
func KeyringSource(kr keyring.Provider, service, account string) Source {
	return Source{
		Lookup: func(_ context.Context) string {
			value, err := kr.Get(service, account)
			if err != nil {
				return ""
			}
			return value
		},
		Hint: fmt.Sprintf("store the credential in the OS keychain under service %q", service),
	}
}

// OnePasswordSource resolves a 1Password secret reference. Reader errors read
// as absent so the chain keeps walking.
func OnePasswordSource(op OPReader, ref string) Source {
	return Source{
		Lookup: func(ctx context.Context) string {
			value, err := op.Read(ctx, ref)
			if err != nil {
				return ""
			}
			return value
		},
		Hint: fmt.Sprintf("make %s readable by the 1Password CLI or a service account", ref),
	}
}
