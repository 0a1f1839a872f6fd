package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/convert"
	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/format"
	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/history"
	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/office"
	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/worker"
	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert files to PDF",
	Long: `Convert runs each given file through the conversion strategy matching its
extension and writes one PDF per input. By default the PDF lands next to its
input file; --outdir redirects all outputs to one directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		outDir, _ := cmd.Flags().GetString("outdir")
		if outDir == "" {
			outDir = cfg.Output.Dir
		}

		registry := format.NewRegistry()
		locator := office.NewLocator(cfg.Tool)
		converters := convert.Defaults(locator, cfg.Tool)

		jobs := make([]types.Job, len(args))
		for i, path := range args {
			jobs[i] = types.NewJob(path, outDir)
		}

		hooks := worker.Hooks{
			OnProgress: func(e types.ProgressEvent) {
				fmt.Fprintf(os.Stderr, "converting: %3d%% %s\n", e.Percent, filepath.Base(e.File))
			},
		}

		w := worker.New(registry, converters, hooks)
		outcomes := <-w.Start(jobs)

		if cfg.History.Enabled {
			recordHistory(cfg.History, outcomes)
		}

		failed := 0
		for _, o := range outcomes {
			if o.Success {
				fmt.Fprintf(os.Stdout, "converted: %s -> %s\n", o.Job.SourcePath, o.Job.OutputPath)
			} else {
				failed++
				fmt.Fprintf(os.Stdout, "failed:    %s (%s)\n", o.Job.SourcePath, o.Error)
			}
		}
		fmt.Fprintf(os.Stdout, "\nBatch summary: %d converted, %d failed (total: %d)\n",
			len(outcomes)-failed, failed, len(outcomes))

		if failed > 0 {
			return fmt.Errorf("%d of %d conversions failed", failed, len(outcomes))
		}
		return nil
	},
}

// recordHistory persists outcomes; history problems never fail a conversion.
func recordHistory(cfg types.HistoryConfig, outcomes []types.Outcome) {
	store, err := history.Open(historyDir(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.AddBatch(outcomes); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording history: %v\n", err)
	}
}

func init() {
	convertCmd.Flags().String("outdir", "", "output directory (default: same directory as each input)")

	rootCmd.AddCommand(convertCmd)
}
