package cmd

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/etymquest/internal/app"
	"github.com/abhisek/etymquest/internal/config"
	"github.com/abhisek/etymquest/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "etymquest",
	Short: "Learn English vocabulary through word roots",
	Long: "Etymquest teaches vocabulary by breaking words into prefixes, roots and suffixes.\n" +
		"Clear levels on the learning path, keep a daily streak, solve the daily word puzzle\n" +
		"and read short AI-written stories built from the words you studied.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		c, err := config.Load(config.Options{File: file, Flags: cmd.Flags()})
		if err != nil {
			return err
		}
		cfg = c
		logger = logging.New(cmd.ErrOrStderr(), logging.Options{Level: c.Log.Level, Format: c.Log.Format})
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, "", false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/etymquest/etymquest.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides ETYMQUEST_DB_PATH)")
	pf.String("locale", "", "Content locale: ja or en")
	pf.String("profile", "", "Learner profile key")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(puzzleCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// openApp opens the database and engine for the configured profile.
// Callers must Close the result.
func openApp(cmd *cobra.Command) (*app.App, error) {
	a, err := app.Open(cmd.Context(), app.Options{Config: cfg, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("open app: %w", err)
	}
	return a, nil
}

func closeApp(a *app.App) {
	if err := a.Close(); err != nil {
		logger.Warn("closing app failed", slog.Any("error", err))
	}
}
