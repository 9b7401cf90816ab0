package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/gofer-sh/gofer/pkg/config"
	"github.com/gofer-sh/gofer/pkg/linear"
	"github.com/gofer-sh/gofer/pkg/results"
)

func newLinearCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linear",
		Short: "Drive issues through the Linear tracker",
		Long: `The linear command creates and updates Linear issues, comments, and
relations through spec documents, and lists assigned issues.

The API key comes from the first source in the chain that yields a value:
LINEAR_API_KEY, the OS keychain, or 1Password. Override the order with
LINEAR_API_SOURCES (comma separated).`,
	}

	cmd.AddCommand(newLinearExecCommand())
	cmd.AddCommand(newLinearAssignedCommand())

	return cmd
}

func newLinearExecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec [file]",
		Short: "Execute a Linear operation from a spec document",
		Long: `Execute one Linear operation described by a JSON document. The document
is read from the given file, or from stdin when the file is "-" or
omitted. The result envelope is printed to stdout as JSON.

Operations: create_issue, update_issue, create_comment, update_comment,
create_relation. A create_issue document without a team_name uses the
linear.team config entry, then the workspace's first team.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSpecInput(cmd, args)
			if err != nil {
				return err
			}

			cfg := config.Get()
			spec, err := linear.ParseSpec(data)
			if err != nil {
				return emitResult(cmd, "linear exec", results.FromError(err))
			}
			if spec.TeamName == "" {
				spec.TeamName = cfg.Linear.Team
			}

			runner := linear.NewRunner(cfg.Linear.KeySources, cfg.CACertificatePath)
			return emitResult(cmd, spec.Operation, runner.Execute(cmd.Context(), spec))
		},
	}
}

func newLinearAssignedCommand() *cobra.Command {
	var (
		email            string
		limit            int
		includeCompleted bool
		jsonOutput       bool
	)

	cmd := &cobra.Command{
		Use:   "assigned",
		Short: "List issues assigned to a user",
		Long: `List the issues assigned to the user with the given email, most recently
updated first. Completed issues are excluded unless --include-completed
is set. The email falls back to LINEAR_DEFAULT_EMAIL and then to the
linear.default_email config entry.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Get()
			if email == "" {
				email = os.Getenv("LINEAR_DEFAULT_EMAIL")
			}
			if email == "" {
				email = cfg.Linear.DefaultEmail
			}
			if email == "" {
				return errors.New("Provide an email via --email or set LINEAR_DEFAULT_EMAIL")
			}

			result := fetchAssigned(cmd.Context(), cfg, email, limit, includeCompleted)
			if jsonOutput {
				return emitResult(cmd, "assigned", result)
			}

			assigned, ok := result.(*linear.AssignedResult)
			if !ok {
				envelope, _ := results.Of(result)
				return errors.New(envelope.Error)
			}
			return renderAssignedTable(cmd.OutOrStdout(), assigned)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email of the user whose issues to list")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of issues to list")
	cmd.Flags().BoolVar(&includeCompleted, "include-completed", false, "Include issues in completed states")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}

// fetchAssigned runs the listing and folds every failure into an envelope.
func fetchAssigned(ctx context.Context, cfg *config.Config, email string, limit int, includeCompleted bool) any {
	api, err := linear.Open(ctx, cfg.Linear.KeySources, cfg.CACertificatePath)
	if err != nil {
		return results.FromError(err)
	}

	result, err := api.AssignedIssues(ctx, email, limit, includeCompleted)
	if err != nil {
		return results.FromError(err)
	}
	return result
}

// renderAssignedTable prints the assigned issues as a bordered table.
func renderAssignedTable(w io.Writer, assigned *linear.AssignedResult) error {
	if assigned.Count == 0 {
		fmt.Fprintln(w, "No assigned issues found.")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader([]string{"ID", "Title", "State", "Priority", "Due", "Updated"}),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(6, tw.AlignLeft)),
	)

	for _, issue := range assigned.Issues {
		if err := table.Append([]string{
			issue.Identifier,
			issue.Title,
			issue.State,
			priorityLabel(issue.Priority),
			issue.DueDate,
			issue.UpdatedAt,
		}); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintf(w, "%d issue(s)\n", assigned.Count)
	return nil
}

// priorityLabel maps Linear's numeric priority scale to its display names.
func priorityLabel(priority int) string {
	switch priority {
	case 1:
		return "Urgent"
	case 2:
		return "High"
	case 3:
		return "Medium"
	case 4:
		return "Low"
	default:
		return "None"
	}
}
