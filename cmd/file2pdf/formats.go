package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported input formats",
	Long: `Formats prints the supported input categories and their file extensions.
With --yaml the registry is emitted as YAML, suitable for building file-picker
filters in a frontend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		descriptors := format.NewRegistry().Descriptors()

		asYAML, _ := cmd.Flags().GetBool("yaml")
		if asYAML {
			out, err := yaml.Marshal(descriptors)
			if err != nil {
				return fmt.Errorf("marshaling formats: %w", err)
			}
			fmt.Fprint(os.Stdout, string(out))
			return nil
		}

		for _, d := range descriptors {
			fmt.Fprintf(os.Stdout, "%-18s %s\n", d.DisplayName+":", strings.Join(d.Extensions, " "))
		}
		return nil
	},
}

func init() {
	formatsCmd.Flags().Bool("yaml", false, "emit the format registry as YAML")

	rootCmd.AddCommand(formatsCmd)
}
