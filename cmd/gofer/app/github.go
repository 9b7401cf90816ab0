package app

import (
	"github.com/spf13/cobra"

	"github.com/gofer-sh/gofer/pkg/config"
	"github.com/gofer-sh/gofer/pkg/github"
	"github.com/gofer-sh/gofer/pkg/results"
)

func newGitHubCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "github",
		Short: "Create issues and comments on GitHub",
		Long: `The github command files issues and comments on GitHub repositories
through spec documents.

The token comes from the first source in the chain that yields a value:
GH_TOKEN or GITHUB_TOKEN, the gh CLI credential store, the OS keychain,
or 1Password. Override the order with GITHUB_TOKEN_SOURCES (comma
separated).`,
	}

	cmd.AddCommand(newGitHubExecCommand())
	cmd.AddCommand(newGitHubAuthStatusCommand())

	return cmd
}

func newGitHubExecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec [file]",
		Short: "Execute a GitHub operation from a spec document",
		Long: `Execute one GitHub operation described by a JSON document. The document
is read from the given file, or from stdin when the file is "-" or
omitted. The result envelope is printed to stdout as JSON.

Operations: create_issue, create_comment, auth_status.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSpecInput(cmd, args)
			if err != nil {
				return err
			}

			spec, err := github.ParseSpec(data)
			if err != nil {
				return emitResult(cmd, "github exec", results.FromError(err))
			}

			runner := github.NewRunner(config.Get().GitHub.TokenSources)
			return emitResult(cmd, spec.Operation, runner.Execute(cmd.Context(), spec))
		},
	}
}

func newGitHubAuthStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auth-status",
		Short: "Show the authenticated GitHub login and token source",
		Long: `Resolve a token through the chain, ask GitHub who it belongs to, and
report the login together with the source that produced the token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner := github.NewRunner(config.Get().GitHub.TokenSources)
			result := runner.Execute(cmd.Context(), &github.Spec{Operation: "auth_status"})
			return emitResult(cmd, "auth_status", result)
		},
	}
}
