// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the file2pdf CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the file2pdf CLI.
var rootCmd = &cobra.Command{
	Use:   "file2pdf",
	Short: "Convert images, text, HTML, and office documents to PDF",
	Long: `file2pdf converts heterogeneous input files into PDF output. Images and
text are rendered directly; HTML uses wkhtmltopdf when available and falls
back to text rendering otherwise; office documents are converted through a
headless LibreOffice invocation.

Files in one invocation form a batch: each file is converted in order, a
failing file never aborts the rest, and every file's outcome is reported.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./file2pdf.yaml or ~/.config/file2pdf/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("file2pdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "file2pdf"))
		}
	}

	viper.SetDefault("tool.timeout_seconds", 120)
	viper.SetDefault("history.enabled", true)

	viper.SetEnvPrefix("FILE2PDF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig materializes the viper state into the typed configuration.
func loadConfig() types.Config {
	return types.Config{
		Tool: types.ToolConfig{
			Path:           viper.GetString("tool.path"),
			TimeoutSeconds: viper.GetInt("tool.timeout_seconds"),
		},
		Output: types.OutputConfig{
			Dir: viper.GetString("output.dir"),
		},
		History: types.HistoryConfig{
			Enabled: viper.GetBool("history.enabled"),
			Dir:     viper.GetString("history.dir"),
		},
	}
}

// historyDir resolves the directory holding the history database.
func historyDir(cfg types.HistoryConfig) string {
	if cfg.Dir != "" {
		return cfg.Dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "file2pdf")
	}
	return "."
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
