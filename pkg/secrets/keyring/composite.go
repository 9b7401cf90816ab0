// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"fmt"
	"runtime"
	"sync"
)

const linuxOS = "linux"

// compositeProvider tries a list of keyring backends in order, lazily
// selecting and caching the first one that reports itself available.
type compositeProvider struct {
	providers []Provider
	active    Provider
	mu        sync.Mutex
}

// NewCompositeProvider creates the default keyring provider stack: the
// platform keyring first, with a keyctl fallback on Linux for headless hosts.
func NewCompositeProvider() Provider {
	providers := []Provider{NewZalandoKeyringProvider()}

	if runtime.GOOS == linuxOS {
		if keyctl, err := NewKeyctlProvider(); err == nil {
			providers = append(providers, keyctl)
		}
	}

	return &compositeProvider{providers: providers}
}

// getActiveProvider returns the cached backend, probing each candidate on
// first use. Returns nil when no backend is available.
func (c *compositeProvider) getActiveProvider() Provider {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active != nil {
		return c.active
	}

	for _, provider := range c.providers {
		if provider.IsAvailable() {
			c.active = provider
			return c.active
		}
	}

	return nil
}

func (c *compositeProvider) Set(service, key, value string) error {
	provider := c.getActiveProvider()
	if provider == nil {
		return fmt.Errorf("no keyring backend available")
	}
	return provider.Set(service, key, value)
}

func (c *compositeProvider) Get(service, key string) (string, error) {
	provider := c.getActiveProvider()
	if provider == nil {
		return "", fmt.Errorf("no keyring backend available")
	}
	return provider.Get(service, key)
}

func (c *compositeProvider) Delete(service, key string) error {
	provider := c.getActiveProvider()
	if provider == nil {
		return fmt.Errorf("no keyring backend available")
	}
	return provider.Delete(service, key)
}

func (c *compositeProvider) DeleteAll(service string) error {
	provider := c.getActiveProvider()
	if provider == nil {
		return fmt.Errorf("no keyring backend available")
	}
	return provider.DeleteAll(service)
}

func (c *compositeProvider) IsAvailable() bool {
	return c.getActiveProvider() != nil
}

func (c *compositeProvider) Name() string {
	if provider := c.getActiveProvider(); provider != nil {
		return provider.Name()
	}
	return "No Available Keyring"
}
