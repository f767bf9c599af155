package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bigint/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd(_ *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch strings.ToLower(format) {
			case "pretty":
				renderVersionPretty(cmd.OutOrStdout())
				return nil
			case "json":
				return renderVersionJSON(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}

func renderVersionPretty(w io.Writer) {
	printf(w, "bigint %s\n", version.Colored())
	if version.GitCommit != "" {
		printf(w, "  commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		printf(w, "  built:  %s\n", version.BuildDate)
	}
}

func renderVersionJSON(w io.Writer) error {
	payload := versionPayload{
		Tool:      "bigint",
		Version:   version.Version,
		GitCommit: version.GitCommit,
		BuildDate: version.BuildDate,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
