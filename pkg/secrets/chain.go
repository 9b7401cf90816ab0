// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

// Package secrets resolves credentials for the vendor clients. Each client
// builds a Chain of lookup strategies (environment variables, the OS
// keychain, 1Password) and takes the first strategy that produces a value.
package secrets

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gofer-sh/gofer/pkg/env"
	"github.com/gofer-sh/gofer/pkg/errors"
	"github.com/gofer-sh/gofer/pkg/logger"
)

// OPPrefix marks a value that is an indirect 1Password secret reference.
const OPPrefix = "op://"

// Source is one credential lookup strategy. Lookup returns the credential
// value, or an empty string when the source has nothing to offer; it never
// reports errors because an unavailable backend and a missing credential are
// treated the same way during resolution.
type Source struct {
	Lookup func(ctx context.Context) string
	// Hint is a one-line description of how to configure this source,
	// surfaced when the whole chain comes up empty.
	Hint string
}

// Attempt records one consulted key during resolution.
type Attempt struct {
	Key     string
	Unknown bool
}

// Chain is an ordered table of credential sources for one subsystem. The
// effective order is the override environment variable when set, then the
// config file order, then the built-in default.
type Chain struct {
	subsystem    string
	overrideVar  string
	defaultOrder []string
	configOrder  []string
	sources      map[string]Source
	envReader    env.Reader
}

// NewChain creates a chain with the built-in source order.
func NewChain(subsystem, overrideVar string, defaultOrder []string) *Chain {
	return NewChainWithEnv(subsystem, overrideVar, defaultOrder, &env.OSReader{})
}

// NewChainWithEnv creates a chain using the provided environment reader.
// This function allows for dependency injection of environment variable access for testing.
func NewChainWithEnv(subsystem, overrideVar string, defaultOrder []string, envReader env.Reader) *Chain {
	return &Chain{
		subsystem:    subsystem,
		overrideVar:  overrideVar,
		defaultOrder: defaultOrder,
		sources:      make(map[string]Source),
		envReader:    envReader,
	}
}

// Register adds a source under the given key. Keys are lowercased so they
// match override values parsed by ParseOrder.
func (c *Chain) Register(key string, source Source) *Chain {
	c.sources[strings.ToLower(key)] = source
	return c
}

// WithConfigOrder sets the order used when the override variable is unset.
// An empty slice leaves the built-in default in effect.
func (c *Chain) WithConfigOrder(order []string) *Chain {
	c.configOrder = order
	return c
}

// ParseOrder splits a comma separated override value into source keys.
// Items are trimmed and lowercased; empty items are dropped.
func ParseOrder(raw string) []string {
	return normalizeOrder(strings.Split(raw, ","))
}

func normalizeOrder(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Order returns the effective source order.
func (c *Chain) Order() []string {
	if raw := c.envReader.Getenv(c.overrideVar); raw != "" {
		if parsed := ParseOrder(raw); len(parsed) > 0 {
			return parsed
		}
	}
	if len(c.configOrder) > 0 {
		if normalized := normalizeOrder(c.configOrder); len(normalized) > 0 {
			return normalized
		}
	}
	return c.defaultOrder
}

// Resolve walks the effective order and returns the first source value that
// is non-empty after trimming. Later sources are never consulted once a value
// is found. Unknown keys in an override are logged and skipped. When every
// source comes up empty the returned error lists what was attempted and how
// to configure each registered source.
func (c *Chain) Resolve(ctx context.Context) (string, error) {
	value, _, err := c.ResolveWithSource(ctx)
	return value, err
}

// ResolveWithSource is Resolve, but also reports the key of the source that
// produced the value.
func (c *Chain) ResolveWithSource(ctx context.Context) (string, string, error) {
	var attempts []Attempt
	for _, key := range c.Order() {
		source, ok := c.sources[key]
		if !ok {
			logger.Debugf("%s: skipping unknown credential source %q", c.subsystem, key)
			attempts = append(attempts, Attempt{Key: key, Unknown: true})
			continue
		}
		attempts = append(attempts, Attempt{Key: key})
		if value := strings.TrimSpace(source.Lookup(ctx)); value != "" {
			logger.Debugf("%s: resolved via source %q", c.subsystem, key)
			return value, key, nil
		}
	}
	return "", "", errors.NewAuthenticationUnavailableError(c.exhaustionMessage(attempts), nil)
}

// exhaustionMessage builds the deterministic diagnostic for a failed
// resolution: attempted keys in consultation order, then one guidance line
// per registered source (sorted by key), then the override variable.
func (c *Chain) exhaustionMessage(attempts []Attempt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "no %s found (tried: %s)", c.subsystem, joinAttempts(attempts))

	keys := make([]string, 0, len(c.sources))
	for key := range c.sources {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if hint := c.sources[key].Hint; hint != "" {
			fmt.Fprintf(&b, "\n  %s: %s", key, hint)
		}
	}

	fmt.Fprintf(&b, "\nOverride the lookup order with %s (comma separated).", c.overrideVar)
	return b.String()
}

func joinAttempts(attempts []Attempt) string {
	if len(attempts) == 0 {
		return "nothing"
	}
	parts := make([]string, 0, len(attempts))
	for _, a := range attempts {
		if a.Unknown {
			parts = append(parts, a.Key+" (unknown)")
		} else {
			parts = append(parts, a.Key)
		}
	}
	return strings.Join(parts, ", ")
}

// Expand dereferences a 1Password secret reference exactly once. Values
// without the op:// prefix pass through unchanged. The dereferenced value is
// returned opaque and is never expanded again, even if it carries the prefix
// itself.
func Expand(ctx context.Context, op OPReader, value string) (string, error) {
	if !strings.HasPrefix(value, OPPrefix) {
		return value, nil
	}
	resolved, err := op.Read(ctx, value)
	if err != nil {
		return "", errors.NewIndirectionFailedError(
			fmt.Sprintf("Failed to resolve 1Password reference %s", value), err)
	}
	return strings.TrimSpace(resolved), nil
}
