//go:build !linux
// +build !linux

package keyring

import "fmt"

// NewKeyctlProvider creates a provider backed by the kernel key retention
// service. This provider is only available on Linux.
func NewKeyctlProvider() (Provider, error) {
	return nil, fmt.Errorf("keyctl provider is only available on Linux")
}
