package frames

import (
	"go.uber.org/zap"

	"artistic-unity/internal/catalog"
)

func NewModule(cat *catalog.Catalog, logger *zap.Logger) *Controller {
	uc := NewReadUseCase(cat)
	return NewController(uc, logger)
}
