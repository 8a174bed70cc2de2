package upload

import (
	"go.uber.org/zap"

	"artistic-unity/internal/config"
)

func NewModule(cfg *config.Config, logger *zap.Logger) *Controller {
	ingestor := NewIngestor(cfg.Upload, logger)
	return NewController(ingestor, cfg.Upload, logger)
}
