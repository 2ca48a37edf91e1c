package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "crossdeck",
	Short: "Turn crosstab workbooks into slide-deck reports",
	Long: `crossdeck ingests survey crosstab workbooks, extracts every
blank-row-delimited table block, and exports or refreshes a slide-deck
report: one chart per table, annotated with a question prompt and a
respondent-base footnote.

Decks carry per-shape annotations binding each chart, table, and
textbox to its source crosstab, so a deck exported once can be
refreshed against a newer workbook without losing hand edits.`,
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./crossdeck.yaml)",
	)
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(validateCmd)
}

// initConfig wires viper and logging. Flags override config values,
// config values override CROSSDECK_* environment variables' absence.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("crossdeck")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.crossdeck")
	}
	viper.SetEnvPrefix("CROSSDECK")
	viper.AutomaticEnv()

	viper.SetDefault("default_chart", "bar_h")
	viper.SetDefault("log_level", "info")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return err
		}
	}

	level := viper.GetString("log_level")
	if f := rootCmd.PersistentFlags().Lookup("log-level"); f != nil && f.Changed {
		level = f.Value.String()
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	})))
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
