package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/tablekit/config"
	"github.com/ncobase/tablekit/handler"
	"github.com/ncobase/tablekit/logging/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand(configFile *string) *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registered tables over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, db, cleanup, err := setup(ctx, *configFile)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := config.NewTableSettings(cfg.Table)
			reg, err := registry(ctx, db, settings, seed)
			if err != nil {
				return err
			}

			setGinMode(cfg.RunMode)
			if cfg.Viper.ConfigFileUsed() != "" {
				config.Watch(cfg, func(next *config.Config, err error) {
					if err != nil {
						logger.Warnf(context.Background(), "%v", err)
						return
					}
					if next.Logger != nil {
						logger.StdLogger().SetLevel(logrus.Level(next.Logger.Level))
					}
					settings.Store(next.Table)
					logger.Infof(context.Background(), "config reloaded from %s", cfg.Viper.ConfigFileUsed())
				})
			}

			h := handler.NewHandler(reg, logger.StdLogger())
			if !cfg.TrustIdentityHeaders {
				logger.Infof(ctx, "identity headers ignored; set server.trust_identity_headers behind an authenticating proxy")
			}
			addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
			srv := &http.Server{
				Addr:         addr,
				Handler:      handler.NewEngine(h, cfg.TrustIdentityHeaders),
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Infof(ctx, "starting %s on %s", cfg.AppName, addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Infof(context.Background(), "shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			logger.Infof(context.Background(), "server exited")
			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", true, "create and seed the demo users relation")
	return cmd
}

func setGinMode(mode string) {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
}
