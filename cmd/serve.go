package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ExpenseAPI/logging"
	v1 "ExpenseAPI/routes/v1"
	"ExpenseAPI/utils"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logging.LogPanics()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, stores, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err := stores.Close(); err != nil {
				logging.Warn().Err(err).Msg("failed to close store")
			}
		}()

		router := v1.NewRouter(v1.Options{
			Production:  cfg.IsProduction(),
			CORSOrigins: cfg.CORSOrigins,
			Users:       stores.Users,
			Expenses:    stores.Expenses,
			Tokens:      utils.NewTokenManager(cfg.JWTSecret),
		})

		server := &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			logging.Info().Str("addr", server.Addr).Str("store", cfg.StoreDriver).Msg("Serving the API")
			serverErr <- server.ListenAndServe()
		}()

		select {
		case err := <-serverErr:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logging.Info().Msg("Shutting down the API")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			logging.Warn().Err(err).Msg("Server did not shut down gracefully")
			return err
		}
		return nil
	},
}
