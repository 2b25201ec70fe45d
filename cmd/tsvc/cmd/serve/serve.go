package serve

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"transcription-service/internal/app"
	"transcription-service/internal/config"
	"transcription-service/internal/logger"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcription HTTP API server",
	Long: `Start the transcription HTTP API server.

- Listens on HOST:PORT (default 0.0.0.0:8000)
- Jobs are kept in memory and lost on restart
- Set REDIS_ADDR to publish job events to a Redis channel`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		log := logger.MustNewLogger(cfg.Server.Environment != "production")
		defer log.Sync()

		srv, err := app.InitializeServer(cfg, log)
		if err != nil {
			return err
		}

		if err := srv.Start(); err != nil {
			return err
		}

		// Block until an interrupt or termination signal arrives.
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Shutdown failed", zap.Error(err))
			return err
		}

		return nil
	},
}
