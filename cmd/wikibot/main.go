// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wikibot CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wikibot/internal/logger"
	"github.com/pdiddy/wikibot/internal/secrets"
	"github.com/pdiddy/wikibot/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Populated by rootCmd's PersistentPreRunE.
var (
	appConfig types.Config
	appLogger *slog.Logger
)

// rootCmd is the base command for the wikibot CLI.
var rootCmd = &cobra.Command{
	Use:   "wikibot",
	Short: "Answer factual questions from Wikipedia",
	Long: `wikibot answers factual questions by searching Wikipedia for the best
matching article, fetching its introduction, and replying with the first few
sentences and a link to the article.

Use ask for a single question, chat for an interactive session, or serve to
expose the same pipeline as an HTTP JSON API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		appLogger = logger.New(cfg.Log.Level, cfg.Log.Format)
		slog.SetDefault(appLogger)

		s, err := secrets.Load(".secrets/", appLogger)
		if err != nil {
			return err
		}
		if len(s) > 0 {
			appLogger.Debug("loaded secrets", "keys", s.Keys())
		}
		appConfig = applySecrets(cfg, s)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./wikibot.yaml or ~/.config/wikibot/wikibot.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")

	setDefaults(viper.GetViper())
}

func initConfig() {
	// A missing .env is normal; anything else is worth a note.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: reading .env: %v\n", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wikibot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wikibot"))
		}
	}

	viper.SetEnvPrefix("WIKIBOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
