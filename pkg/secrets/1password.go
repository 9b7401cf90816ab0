package secrets

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/1password/onepassword-sdk-go"
	"github.com/cli/safeexec"

	"github.com/gofer-sh/gofer/pkg/env"
	"github.com/gofer-sh/gofer/pkg/logger"
)

//go:generate mockgen -destination=mocks/mock_onepassword.go -package=mocks -source=1password.go OPSecretsService,OPReader

// OPSecretsService defines the interface for the 1Password Secrets service
type OPSecretsService interface {
	Resolve(ctx context.Context, secretReference string) (string, error)
}

// OPReader reads secrets addressed by op:// references.
type OPReader interface {
	Read(ctx context.Context, ref string) (string, error)
}

var timeout = 5 * time.Second

// sdkReader resolves references through the 1Password service account SDK.
type sdkReader struct {
	secretsService OPSecretsService
}

// Read retrieves a secret from 1Password.
func (r *sdkReader) Read(ctx context.Context, ref string) (string, error) {
	if !strings.HasPrefix(ref, OPPrefix) {
		return "", fmt.Errorf("invalid secret path: %s", ref)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	secret, err := r.secretsService.Resolve(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("error resolving secret: %v", err)
	}

	return secret, nil
}

// cliReader shells out to the 1Password CLI. A missing binary surfaces as an
// error on every Read, which chain sources treat as an absent credential.
type cliReader struct{}

// Read retrieves a secret via `op read`.
func (*cliReader) Read(ctx context.Context, ref string) (string, error) {
	if !strings.HasPrefix(ref, OPPrefix) {
		return "", fmt.Errorf("invalid secret path: %s", ref)
	}

	opBin, err := safeexec.LookPath("op")
	if err != nil {
		return "", fmt.Errorf("1Password CLI not found: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, opBin, "read", ref).Output()
	if err != nil {
		return "", fmt.Errorf("op read %s failed: %v", ref, err)
	}

	return strings.TrimSpace(string(out)), nil
}

// NewOPReader selects the 1Password access path: the service account SDK when
// OP_SERVICE_ACCOUNT_TOKEN is set, otherwise the op CLI.
func NewOPReader(envReader env.Reader) OPReader {
	token := envReader.Getenv("OP_SERVICE_ACCOUNT_TOKEN")
	if token == "" {
		return &cliReader{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := onepassword.NewClient(
		ctx,
		onepassword.WithServiceAccountToken(token),
		onepassword.WithIntegrationInfo(onepassword.DefaultIntegrationName, onepassword.DefaultIntegrationVersion),
	)
	if err != nil {
		logger.Debugf("error creating 1Password client, falling back to the CLI: %v", err)
		return &cliReader{}
	}

	return &sdkReader{secretsService: client.Secrets()}
}

// NewOPReaderWithService creates a reader backed by the provided secrets service.
// This function is primarily intended for testing purposes.
func NewOPReaderWithService(secretsService OPSecretsService) OPReader {
	return &sdkReader{secretsService: secretsService}
}
