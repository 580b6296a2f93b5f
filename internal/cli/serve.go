package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit/internal/api"
)

func newServeCmd() *cobra.Command {
	var configPath, addr string
	var store storeOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP facade",
		Long: `Serve starts an HTTP server exposing the layout engine: upload decks,
run operations, and fetch SVG previews over JSON endpoints. Anchor pins go
to the selected anchor store, so CLI and API users share them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg := api.DefaultConfig()
			if configPath != "" {
				var err error
				if cfg, err = api.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if addr != "" {
				cfg.Addr = addr
			}

			s, closeStore, err := store.open(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			server := &http.Server{
				Addr:         cfg.Addr,
				Handler:      api.NewServer(logger, s).Router(),
				ReadTimeout:  cfg.ReadTimeout.Duration,
				WriteTimeout: cfg.WriteTimeout.Duration,
			}

			go func() {
				<-ctx.Done()
				_ = server.Shutdown(context.Background())
			}()

			logger.Infof("Listening on %s", cfg.Addr)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	store.register(cmd)
	return cmd
}
