package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/etymquest/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the story proxy",
	Long: "Serve POST /api/generate-story, relaying story prompts to the configured LLM\n" +
		"provider so clients never need an API key. Requests are logged to the database.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer closeApp(a)

		provider, err := a.Provider(cmd.Context())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		srv, err := server.New(server.Options{
			Provider:       provider,
			LLM:            cfg.LLMProviderConfig(),
			AllowedOrigins: cfg.Server.AllowedOrigins,
			RequestTimeout: cfg.Server.RequestTimeout,
			Logger:         logger,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(cmd.OutOrStdout(), "Story proxy on http://%s (model %s)\n", cfg.Server.Addr, provider.ModelID())
		logger.Info("starting story proxy", slog.String("addr", cfg.Server.Addr), slog.String("provider", cfg.LLM.Provider))
		return srv.ListenAndServe(ctx, cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from server.addr)")
}
