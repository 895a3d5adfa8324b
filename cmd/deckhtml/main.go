// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the deckhtml CLI. It converts
// presentations into self-contained HTML documents and keeps an optional
// searchable catalog of past conversions.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deckhtml/internal/convert"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit codes.
const (
	exitOK      = 0
	exitUsage   = 1
	exitInvalid = 2
	exitFailure = 3
)

// usageError marks command-line mistakes so they map to exitUsage.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usage(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

// rootCmd is the base command for the deckhtml CLI.
var rootCmd = &cobra.Command{
	Use:   "deckhtml",
	Short: "Convert presentations to styled HTML",
	Long: `deckhtml reads PowerPoint presentations (.pptx and related Open XML
formats, legacy .ppt, or YAML/JSON document model files) and writes one
self-contained HTML document per input, with images inlined.

Conversions can be recorded in a local catalog so slide text can be
searched later with the search and history subcommands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./deckhtml.yaml or ~/.config/deckhtml/deckhtml.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")

	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usage(err)
	})
}

func initConfig() {
	setDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("deckhtml")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "deckhtml"))
		}
	}

	viper.SetEnvPrefix("DECKHTML")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &ue), strings.HasPrefix(err.Error(), "unknown command"):
		return exitUsage
	case errors.Is(err, convert.ErrInvalidInput):
		return exitInvalid
	default:
		return exitFailure
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
	}
	os.Exit(exitCode(err))
}
