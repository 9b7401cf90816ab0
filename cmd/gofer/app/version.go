package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gofer-sh/gofer/pkg/versions"
)

// newVersionCmd creates a new version command
func newVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version of gofer",
		Long:  `Display detailed version information about gofer, including version number, git commit, build date, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info := versions.GetVersionInfo()

			if jsonOutput {
				printJSONVersionInfo(cmd.OutOrStdout(), info)
			} else {
				printVersionInfo(cmd.OutOrStdout(), info)
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version information as JSON")

	return cmd
}

// printVersionInfo prints the version information
func printVersionInfo(w io.Writer, info versions.VersionInfo) {
	fmt.Fprintf(w, "gofer %s\n", info.Version)
	fmt.Fprintf(w, "Commit: %s\n", info.Commit)
	fmt.Fprintf(w, "Built: %s\n", info.BuildDate)
	fmt.Fprintf(w, "Go version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "Platform: %s\n", info.Platform)
}

// printJSONVersionInfo prints the version information as JSON
func printJSONVersionInfo(w io.Writer, info versions.VersionInfo) {
	// Simple JSON formatting without importing encoding/json
	jsonStr := fmt.Sprintf(`{
  "version": "%s",
  "commit": "%s",
  "build_date": "%s",
  "go_version": "%s",
  "platform": "%s"
}`,
		escapeJSON(info.Version),
		escapeJSON(info.Commit),
		escapeJSON(info.BuildDate),
		escapeJSON(info.GoVersion),
		escapeJSON(info.Platform))

	fmt.Fprintf(w, "%s\n", jsonStr)
}

// escapeJSON escapes special characters in JSON strings
func escapeJSON(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
