// SPDX-FileCopyrightText: Copyright 2026 The gofer Authors
// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"errors"
	"runtime"

	zkeyring "github.com/zalando/go-keyring"
)

// dbusWrapperProvider adapts the zalando/go-keyring library, which talks to
// the macOS Keychain, the Windows Credential Manager, or the D-Bus Secret
// Service depending on platform.
type dbusWrapperProvider struct{}

// NewZalandoKeyringProvider creates a provider backed by the platform keyring.
func NewZalandoKeyringProvider() Provider {
	return &dbusWrapperProvider{}
}

func (*dbusWrapperProvider) Set(service, key, value string) error {
	return zkeyring.Set(service, key, value)
}

func (*dbusWrapperProvider) Get(service, key string) (string, error) {
	value, err := zkeyring.Get(service, key)
	if err != nil {
		if errors.Is(err, zkeyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (*dbusWrapperProvider) Delete(service, key string) error {
	err := zkeyring.Delete(service, key)
	if err != nil && !errors.Is(err, zkeyring.ErrNotFound) {
		return err
	}
	return nil
}

func (*dbusWrapperProvider) DeleteAll(service string) error {
	err := zkeyring.DeleteAll(service)
	if err != nil && !errors.Is(err, zkeyring.ErrNotFound) {
		return err
	}
	return nil
}

func (*dbusWrapperProvider) IsAvailable() bool {
	testKey := GenerateUniqueTestKey()

	if err := zkeyring.Set("gofer-test", testKey, "ok"); err != nil {
		return false
	}

	_ = zkeyring.Delete("gofer-test", testKey)
	return true
}

func (*dbusWrapperProvider) Name() string {
	switch runtime.GOOS {
	case "darwin":
		return "macOS Keychain"
	case "windows":
		return "Windows Credential Manager"
	case linuxOS:
		return "D-Bus Secret Service"
	default:
		return "System Keyring"
	}
}
