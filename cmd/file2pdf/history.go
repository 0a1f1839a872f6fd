package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversion outcomes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := history.Open(historyDir(loadConfig().History))
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Recent(limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(os.Stdout, "No conversions recorded yet.")
			return nil
		}

		for _, r := range records {
			status := "ok"
			detail := r.OutputPath
			if !r.Success {
				status = "failed"
				detail = r.Error
			}
			fmt.Fprintf(os.Stdout, "%s  %-6s %s -> %s\n",
				r.CreatedAt.Local().Format(time.DateTime), status, r.SourcePath, detail)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of records to show")

	rootCmd.AddCommand(historyCmd)
}
