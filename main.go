package main

import (
	"github.com/fintrack-labs/fintrack-go/config"
	"github.com/fintrack-labs/fintrack-go/logger"
	"github.com/fintrack-labs/fintrack-go/mockapi"

	"go.uber.org/zap"
)

// Serves the bundled mock backend. Point the client at it with
// API_BASE_URL=http://127.0.0.1:8000 (the default).
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	server, err := mockapi.NewServer(cfg.Server, log)
	if err != nil {
		log.Fatal("failed to initialize mock backend", zap.Error(err))
	}

	if cfg.Server.Seed {
		log.Info("demo fixtures loaded",
			zap.String("email", mockapi.DemoEmail),
			zap.String("password", mockapi.DemoPassword),
		)
	}

	router := server.Router()
	log.Info("mock backend listening", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
