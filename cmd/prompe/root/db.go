package root

import (
	"context"

	"go.uber.org/zap"

	"github.com/B1NYL/Promp-E-sub000/internal/aiclient"
	"github.com/B1NYL/Promp-E-sub000/internal/config"
	"github.com/B1NYL/Promp-E-sub000/internal/engine"
	"github.com/B1NYL/Promp-E-sub000/internal/storage"
)

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// openService builds the whole application stack: config, logger, database,
// engine service and backend client. Stores are constructed here once and
// injected downward; nothing holds package-level state.
func openService(ctx context.Context) (*engine.Service, *aiclient.Client, func(), error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := newLogger(cfg.Debug)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}

	svc := engine.NewService(ctx, db, engine.WithLogger(log))
	ai := aiclient.New(cfg.BackendURL, cfg.RequestTimeout, log)

	cleanup := func() {
		_ = db.Close()
		_ = log.Sync()
	}
	return svc, ai, cleanup, nil
}
