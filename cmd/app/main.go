package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/Gitkbc/Gen-Ai-Tourism/cmd/fx/cache_fx"
	"github.com/Gitkbc/Gen-Ai-Tourism/cmd/fx/catalog_fx"
	"github.com/Gitkbc/Gen-Ai-Tourism/cmd/fx/config_fx"
	"github.com/Gitkbc/Gen-Ai-Tourism/cmd/fx/controllers_fx"
	"github.com/Gitkbc/Gen-Ai-Tourism/cmd/fx/llm_fx"
	"github.com/Gitkbc/Gen-Ai-Tourism/cmd/fx/planner_fx"
	"github.com/Gitkbc/Gen-Ai-Tourism/internal/api/controllers"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/config"
	"github.com/Gitkbc/Gen-Ai-Tourism/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		llm_fx.Module,
		catalog_fx.Module,
		cache_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(plannerController *controllers.PlannerController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController)

	return r
}

func RegisterRoutes(r *gin.Engine, plannerController *controllers.PlannerController) {
	planner := r.Group("/planner")
	planner.POST("/discover", plannerController.DiscoverPlaces)
	planner.POST("/full-itinerary", plannerController.FullItinerary)
}
