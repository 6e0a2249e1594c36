// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the stempelkarten CLI, which renders
// volunteer stamp cards from TOML descriptions through a Typst template.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/stempelkarten/internal/logging"
	"github.com/pdiddy/stempelkarten/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// envFile is loaded into the environment before settings are resolved.
const envFile = ".env"

// rootCmd is the base command for the stempelkarten CLI.
var rootCmd = &cobra.Command{
	Use:   "stempelkarten",
	Short: "Generate volunteer stamp cards as PDF",
	Long: `stempelkarten reads one TOML description file per volunteer, checks
that every referenced picture exists, and renders the roster into a PDF of
stamp cards using a Typst template bundle.

Settings come from flags, STEMPELKARTEN_* environment variables (a .env file in
the working directory is honoured), or a stempelkarten.yaml config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadEnvFile(envFile); err != nil {
			return err
		}
		level, err := logging.ParseLevel(viper.GetString(keyLogLevel))
		if err != nil {
			return fmt.Errorf("%w: %w", types.ErrConfiguration, err)
		}
		logging.Init(os.Stderr, level)
		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug("using config file", "path", used)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./stempelkarten.yaml or ~/.config/stempelkarten/config.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, or error")
	pf.StringP("volunteer-dir", "v", "", "directory containing the volunteer description .toml files")
	pf.StringP("picture-dir", "p", "", "directory containing the volunteer pictures")
	pf.String("typst-bin", "typst", "typst executable used to render the template")
	pf.String("pushgateway-url", "", "push run metrics to this Prometheus Pushgateway")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		keyLogLevel:       "log-level",
		keyVolunteerDir:   "volunteer-dir",
		keyPictureDir:     "picture-dir",
		keyTypstBin:       "typst-bin",
		keyPushgatewayURL: "pushgateway-url",
	})
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("stempelkarten")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "stempelkarten"))
		}
	}

	viper.SetEnvPrefix("STEMPELKARTEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: could not read config file: %v\n", err)
		}
	}
}

// loadEnvFile loads path into the process environment when it exists.
// Variables already set are not overridden.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: loading %s: %w", types.ErrConfiguration, path, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
