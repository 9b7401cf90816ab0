package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gofer-sh/gofer/pkg/config"
	"github.com/gofer-sh/gofer/pkg/secrets"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the gofer configuration file",
		Long:  "The config command shows and updates settings in the configuration file.",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetSourcesCommand())
	cmd.AddCommand(newConfigSetCACertCommand())
	cmd.AddCommand(newConfigGetCACertCommand())
	cmd.AddCommand(newConfigUnsetCACertCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadOrCreateConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to serialize configuration: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

func newConfigSetSourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-sources <subsystem> <sources>",
		Short: "Set the credential lookup order for a subsystem",
		Long: `Set the credential source lookup order for one of the subsystems
sheets, github, or linear. Sources is a comma separated list such as
"env,keychain,1password"; an empty list restores the built-in order.
Environment override variables still take precedence over the file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subsystem := args[0]
			order := secrets.ParseOrder(args[1])

			var apply func(*config.Config)
			switch subsystem {
			case "sheets":
				apply = func(c *config.Config) { c.Sheets.CredentialSources = order }
			case "github":
				apply = func(c *config.Config) { c.GitHub.TokenSources = order }
			case "linear":
				apply = func(c *config.Config) { c.Linear.KeySources = order }
			default:
				return fmt.Errorf("unknown subsystem %q (expected sheets, github, or linear)", subsystem)
			}

			if err := config.UpdateConfig(apply); err != nil {
				return fmt.Errorf("failed to update configuration: %w", err)
			}

			display := strings.Join(order, ", ")
			if display == "" {
				display = "(built-in order)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s sources to %s\n", subsystem, display)
			return nil
		},
	}
}

func newConfigSetCACertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-ca-cert <path>",
		Short: "Set the CA certificate for outbound TLS connections",
		Long: `Set the CA certificate file used to verify outbound TLS connections.
This is useful in corporate environments with TLS inspection where custom
CA certificates are required.

Example:
  gofer config set-ca-cert /path/to/corporate-ca.crt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			certPath := args[0]

			provider := config.NewDefaultProvider()
			if err := provider.SetCACert(certPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully set CA certificate path: %s\n", filepath.Clean(certPath))
			return nil
		},
	}
}

func newConfigGetCACertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get-ca-cert",
		Short: "Show the configured CA certificate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider := config.NewDefaultProvider()
			certPath, exists, accessible := provider.GetCACert()

			if !exists {
				fmt.Fprintln(cmd.OutOrStdout(), "No CA certificate is currently configured.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Current CA certificate path: %s\n", certPath)

			if !accessible {
				fmt.Fprintln(cmd.OutOrStdout(), "Warning: The configured CA certificate file is not accessible")
			}

			return nil
		},
	}
}

func newConfigUnsetCACertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset-ca-cert",
		Short: "Remove the configured CA certificate",
		Long:  "Remove the CA certificate configuration, reverting to the default trust store.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			provider := config.NewDefaultProvider()
			certPath, exists, _ := provider.GetCACert()

			if !exists {
				fmt.Fprintln(cmd.OutOrStdout(), "No CA certificate is currently configured.")
				return nil
			}

			if err := provider.UnsetCACert(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully removed CA certificate configuration: %s\n", certPath)
			return nil
		},
	}
}
