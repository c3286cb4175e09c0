package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/planetonomy/internal/domain/entity"
	"github.com/younwookim/planetonomy/internal/infrastructure/config"
	"github.com/younwookim/planetonomy/internal/infrastructure/tmx"
)

// LoadStage reads a stage config and decodes its map from the same filesystem
func LoadStage(loader *config.Loader, name string, logger *zap.Logger) (*entity.Level, *config.StageConfig, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	stage, err := loader.LoadStage(name)
	if err != nil {
		return nil, nil, err
	}

	maps := tmx.NewFSLoader(loader.FS(),
		tmx.WithLogger(logger),
		tmx.WithTileLayer(stage.TileLayer),
		tmx.WithObjectLayer(stage.ObjectLayer),
	)
	level, err := maps.Load(stage.Map)
	if err != nil {
		return nil, nil, fmt.Errorf("stage %s: %w", name, err)
	}

	for _, w := range level.Warnings {
		logger.Debug("map warning", zap.String("stage", name), zap.Error(w))
	}
	logger.Info("level loaded",
		zap.String("stage", stage.ID),
		zap.String("name", stage.Name),
		zap.Int("width", level.Grid.Width()),
		zap.Int("height", level.Grid.Height()),
	)
	return level, stage, nil
}
