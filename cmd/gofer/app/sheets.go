package app

import (
	"github.com/spf13/cobra"

	"github.com/gofer-sh/gofer/pkg/config"
	"github.com/gofer-sh/gofer/pkg/results"
	"github.com/gofer-sh/gofer/pkg/sheets"
)

func newSheetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Work with Google Sheets spreadsheets",
		Long: `The sheets command reads and writes spreadsheet data, either through a
JSON spec document or with a direct read.

Credentials come from the first source in the chain that yields a value:
GOOGLE_SHEETS_SERVICE_ACCOUNT_JSON, GOOGLE_SHEETS_SERVICE_ACCOUNT, the OS
keychain, or 1Password. Override the order with
GOOGLE_SHEETS_CREDENTIAL_SOURCES (comma separated).`,
	}

	cmd.AddCommand(newSheetsExecCommand())
	cmd.AddCommand(newSheetsReadCommand())

	return cmd
}

func newSheetsExecCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "exec [file]",
		Short: "Execute a spreadsheet operation from a spec document",
		Long: `Execute one spreadsheet operation described by a JSON document. The
document is read from the given file, or from stdin when the file is "-"
or omitted. The result envelope is printed to stdout as JSON.

Operations: read, read_dicts, append, append_rows, update, find,
append_table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSpecInput(cmd, args)
			if err != nil {
				return err
			}

			spec, err := sheets.ParseSpec(data)
			if err != nil {
				return emitResult(cmd, "sheets exec", results.FromError(err))
			}

			runner := sheets.NewRunner(config.Get().Sheets.CredentialSources)
			return emitResult(cmd, spec.Operation, runner.Execute(cmd.Context(), spec))
		},
	}
}

func newSheetsReadCommand() *cobra.Command {
	var dicts bool

	cmd := &cobra.Command{
		Use:   "read <spreadsheet-id> <sheet> [range]",
		Short: "Read sheet values without writing a spec document",
		Long: `Read values from a sheet, optionally restricted to an A1 range. With
--dicts, rows come back as objects keyed by the header row.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := &sheets.Spec{
				SpreadsheetID: args[0],
				SheetName:     args[1],
				Operation:     "read",
			}
			if len(args) == 3 {
				spec.RangeNotation = args[2]
			}
			if dicts {
				spec.Operation = "read_dicts"
			}

			runner := sheets.NewRunner(config.Get().Sheets.CredentialSources)
			return emitResult(cmd, spec.Operation, runner.Execute(cmd.Context(), spec))
		},
	}

	cmd.Flags().BoolVar(&dicts, "dicts", false, "Return rows as objects keyed by the header row")

	return cmd
}
