package modkit

import (
	"datesieve/internal/core/datescan"
	"datesieve/internal/platform/config"
	"datesieve/internal/platform/logger"
)

// Deps holds the dependencies shared by every module
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	Engine *datescan.Engine
}

// EngineOrDefault returns the shared engine or one over the default catalog
func (d Deps) EngineOrDefault() *datescan.Engine {
	if d.Engine != nil {
		return d.Engine
	}
	return datescan.New(nil)
}
