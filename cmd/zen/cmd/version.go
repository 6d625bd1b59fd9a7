package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var versionFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display detailed version information including commit hash and build date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch versionFormat {
		case "text":
			fmt.Printf("zen version %s\n", Version)
			fmt.Printf("Git Commit: %s\n", GitCommit)
			fmt.Printf("Build Date: %s\n", BuildDate)
			return nil
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]string{
				"version": Version,
				"commit":  GitCommit,
				"built":   BuildDate,
			})
		default:
			return fmt.Errorf("unknown --format %q: want \"text\" or \"json\"", versionFormat)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	flags := pflag.NewFlagSet("version", pflag.ContinueOnError)
	flags.StringVar(&versionFormat, "format", "text", `output format: "text" or "json"`)
	versionCmd.Flags().AddFlagSet(flags)
}
