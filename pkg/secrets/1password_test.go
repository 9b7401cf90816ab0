package secrets_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	envmocks "github.com/gofer-sh/gofer/pkg/env/mocks"
	"github.com/gofer-sh/gofer/pkg/secrets"
	"github.com/gofer-sh/gofer/pkg/secrets/mocks"
)

func TestSDKReader_Read(t *testing.T) {
	// Create a mock controller
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Create mock service
	mockSecretsService := mocks.NewMockOPSecretsService(ctrl)

	// Create reader with our mock service
	reader := secrets.NewOPReaderWithService(mockSecretsService)

	tests := []struct {
		name        string
		ref         string
		setupMock   func()
		wantSecret  string
		wantErr     bool
		errContains string
	}{
		{
			name:        "invalid path format",
			ref:         "invalid-path",
			setupMock:   func() {},
			wantSecret:  "",
			wantErr:     true,
			errContains: "invalid secret path",
		},
		{
			name: "valid path format with success",
			ref:  "op://vault/item/field",
			setupMock: func() {
				mockSecretsService.EXPECT().
					Resolve(gomock.Any(), "op://vault/item/field").
					Return("test-secret-value", nil)
			},
			wantSecret:  "test-secret-value",
			wantErr:     false,
			errContains: "",
		},
		{
			name: "valid path format with error",
			ref:  "op://vault/item/field",
			setupMock: func() {
				mockSecretsService.EXPECT().
					Resolve(gomock.Any(), "op://vault/item/field").
					Return("", fmt.Errorf("secret not found"))
			},
			wantSecret:  "",
			wantErr:     true,
			errContains: "error resolving secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup expectations
			tt.setupMock()

			// Execute test
			secret, err := reader.Read(context.Background(), tt.ref)

			// Assert results
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantSecret, secret)
			}
		})
	}
}

func TestNewOPReader(t *testing.T) {
	t.Parallel()

	t.Run("without service account token", func(t *testing.T) {
		t.Parallel()
		envReader := envmocks.NewMockReader(gomock.NewController(t))
		envReader.EXPECT().Getenv("OP_SERVICE_ACCOUNT_TOKEN").Return("")

		reader := secrets.NewOPReader(envReader)
		require.NotNil(t, reader)

		// The CLI reader still validates references before shelling out
		_, err := reader.Read(context.Background(), "not-a-reference")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid secret path")
	})
}
