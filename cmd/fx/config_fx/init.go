package config_fx

import (
	"go.uber.org/fx"

	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/config"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/logger"
)

var Module = fx.Provide(config.Load, logger.New)
