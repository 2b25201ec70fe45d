//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"transcription-service/internal/api/server"
	"transcription-service/internal/api/services"
	"transcription-service/internal/config"
)

// InitializeServer builds the fully wired API server.
func InitializeServer(cfg config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(
		provideStore,
		provideEngine,
		providePublisher,
		provideServerConfig,
		services.NewTranscriptionService,
		server.NewServer,
	)
	return nil, nil
}
