package app

import (
	"go.uber.org/zap"

	"transcription-service/internal/api/server"
	"transcription-service/internal/app/engine"
	"transcription-service/internal/app/events"
	"transcription-service/internal/app/store"
	"transcription-service/internal/config"
)

// provideStore creates the in-memory job store. All records live for the
// process lifetime only.
func provideStore() store.TranscriptionStore {
	return store.NewMemoryStore()
}

// provideEngine builds the transcription engine selected by the engine
// configuration file. An empty path selects the mock engine.
func provideEngine(cfg config.Config) (engine.Engine, error) {
	engineCfg, err := engine.LoadConfig(cfg.Engine.ConfigPath)
	if err != nil {
		return nil, err
	}
	return engine.New(engineCfg)
}

// providePublisher creates the event publisher. Without a Redis address
// events are discarded.
func providePublisher(cfg config.Config, logger *zap.Logger) events.Publisher {
	if cfg.Redis.Addr == "" {
		return events.NewNopPublisher()
	}
	return events.NewRedisPublisher(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Channel, logger)
}

// provideServerConfig maps the runtime configuration onto the HTTP server
func provideServerConfig(cfg config.Config) server.Config {
	return server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Environment:  cfg.Server.Environment,
	}
}
