package config

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
)

// setCACert validates and sets the CA certificate path using the provided provider.
// It performs the following validations:
//   - Verifies the file exists and is readable
//   - Reads the certificate content
//   - Validates that the content parses as at least one PEM certificate
//   - Cleans the file path
//
// The function returns an error if any validation fails or if updating the configuration fails.
func setCACert(provider Provider, certPath string) error {
	// Clean the path
	certPath = filepath.Clean(certPath)

	// Validate that the file exists and is readable
	if _, err := os.Stat(certPath); err != nil {
		return fmt.Errorf("CA certificate file not found or not accessible: %w", err)
	}

	// Read and validate the certificate
	certContent, err := os.ReadFile(certPath)
	if err != nil {
		return fmt.Errorf("failed to read CA certificate file: %w", err)
	}

	// Validate the certificate format
	if err := validateCACertificate(certContent); err != nil {
		return fmt.Errorf("invalid CA certificate: %w", err)
	}

	// Update the configuration
	err = provider.UpdateConfig(func(c *Config) {
		c.CACertificatePath = certPath
	})
	if err != nil {
		return fmt.Errorf("failed to update configuration: %w", err)
	}

	return nil
}

// validateCACertificate checks that the given bytes contain at least one
// parseable PEM-encoded X.509 certificate.
func validateCACertificate(certContent []byte) error {
	found := false
	rest := certContent
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		if _, err := x509.ParseCertificate(block.Bytes); err != nil {
			return fmt.Errorf("failed to parse certificate: %w", err)
		}
		found = true
	}

	if !found {
		return fmt.Errorf("no PEM certificate found in file")
	}
	return nil
}

// getCACert returns the currently configured CA certificate path and its accessibility status.
// It returns three values:
//   - certPath: the configured certificate path (empty string if not set)
//   - exists: true if a CA certificate is configured in the config
//   - accessible: true if the certificate file exists and is accessible on the filesystem
//
// Note: exists can be true while accessible is false if the file was deleted after configuration.
func getCACert(provider Provider) (certPath string, exists bool, accessible bool) {
	cfg := provider.GetConfig()

	if cfg.CACertificatePath == "" {
		return "", false, false
	}

	certPath = cfg.CACertificatePath
	exists = true

	// Check if the file is still accessible
	if _, err := os.Stat(certPath); err != nil {
		accessible = false
	} else {
		accessible = true
	}

	return certPath, exists, accessible
}

// unsetCACert removes the CA certificate configuration from the config file.
// If no CA certificate is currently configured, this function is a no-op and returns nil.
// Returns an error if updating the configuration fails.
func unsetCACert(provider Provider) error {
	cfg := provider.GetConfig()

	if cfg.CACertificatePath == "" {
		// Already unset, no-op
		return nil
	}

	// Update the configuration
	err := provider.UpdateConfig(func(c *Config) {
		c.CACertificatePath = ""
	})
	if err != nil {
		return fmt.Errorf("failed to update configuration: %w", err)
	}

	return nil
}
