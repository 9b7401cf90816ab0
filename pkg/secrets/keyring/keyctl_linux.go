//go:build linux
// +build linux

package keyring

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

type keyctlProvider struct {
	initOnce sync.Once
	initErr  error
	ringID   int
	mu       sync.RWMutex
	keys     map[string]map[string]int // service -> key -> keyid mapping
}

// NewKeyctlProvider creates a provider backed by the kernel key retention
// service, for headless hosts without a D-Bus session. The user keyring is
// attached lazily on first use.
func NewKeyctlProvider() (Provider, error) {
	return &keyctlProvider{
		keys: make(map[string]map[string]int),
	}, nil
}

// ensureRing attaches the user keyring on first use, so that hosts where
// keyctl syscalls are blocked surface the failure through IsAvailable rather
// than at construction time.
func (k *keyctlProvider) ensureRing() (int, error) {
	k.initOnce.Do(func() {
		// Use user keyring for persistence across process invocations
		ringID, err := unix.KeyctlGetKeyringID(unix.KEY_SPEC_USER_KEYRING, false)
		if err != nil {
			k.initErr = fmt.Errorf("could not get user keyring: %w", err)
			return
		}

		// Link to thread keyring for reads
		_, err = unix.KeyctlInt(unix.KEYCTL_LINK, ringID, unix.KEY_SPEC_THREAD_KEYRING, 0, 0)
		if err != nil {
			k.initErr = fmt.Errorf("unable to link user keyring to thread keyring: %w", err)
			return
		}

		k.ringID = ringID
	})
	return k.ringID, k.initErr
}

func (k *keyctlProvider) Set(service, key, value string) error {
	ringID, err := k.ensureRing()
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	keyName := fmt.Sprintf("%s:%s", service, key)
	keyID, err := unix.AddKey("user", keyName, []byte(value), ringID)
	if err != nil {
		return fmt.Errorf("failed to set key '%s' in user keyring: %w", keyName, err)
	}

	// Track the key for deletion
	if k.keys[service] == nil {
		k.keys[service] = make(map[string]int)
	}
	k.keys[service][key] = keyID

	return nil
}

func (k *keyctlProvider) Get(service, key string) (string, error) {
	ringID, err := k.ensureRing()
	if err != nil {
		return "", err
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	keyName := fmt.Sprintf("%s:%s", service, key)
	keyID, err := unix.KeyctlSearch(ringID, "user", keyName, 0)
	if err != nil {
		// Key not found
		return "", ErrNotFound
	}

	bufSize := 2048
	buf := make([]byte, bufSize)
	readBytes, err := unix.KeyctlBuffer(unix.KEYCTL_READ, keyID, buf, bufSize)
	if err != nil {
		return "", fmt.Errorf("read of key '%s' failed: %w", keyName, err)
	}

	if readBytes > bufSize {
		return "", fmt.Errorf("buffer too small for keyring payload")
	}

	return string(buf[:readBytes]), nil
}

func (k *keyctlProvider) Delete(service, key string) error {
	ringID, err := k.ensureRing()
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	return k.deleteLocked(ringID, service, key)
}

// deleteLocked revokes a key. The caller must hold the write lock.
func (k *keyctlProvider) deleteLocked(ringID int, service, key string) error {
	keyName := fmt.Sprintf("%s:%s", service, key)
	keyID, err := unix.KeyctlSearch(ringID, "user", keyName, 0)
	if err != nil {
		// Key not found - this is not an error for Delete
		return nil
	}

	_, err = unix.KeyctlInt(unix.KEYCTL_REVOKE, keyID, 0, 0, 0)
	if err != nil {
		return fmt.Errorf("failed to delete key '%s': %w", keyName, err)
	}

	// Remove from tracking
	if serviceKeys, exists := k.keys[service]; exists {
		delete(serviceKeys, key)
		if len(serviceKeys) == 0 {
			delete(k.keys, service)
		}
	}

	return nil
}

func (k *keyctlProvider) DeleteAll(service string) error {
	ringID, err := k.ensureRing()
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	serviceKeys, exists := k.keys[service]
	if !exists {
		return nil // No keys to delete
	}

	var lastErr error
	for key := range serviceKeys {
		if err := k.deleteLocked(ringID, service, key); err != nil {
			lastErr = err
		}
	}

	delete(k.keys, service)
	return lastErr
}

func (k *keyctlProvider) IsAvailable() bool {
	testKey := GenerateUniqueTestKey()

	if err := k.Set("gofer-test", testKey, "ok"); err != nil {
		return false
	}

	_ = k.Delete("gofer-test", testKey)
	return true
}

func (*keyctlProvider) Name() string {
	return "Linux Keyctl"
}
