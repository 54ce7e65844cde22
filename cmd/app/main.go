package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"itinero/cmd/fx/catalog_fx"
	"itinero/cmd/fx/config_fx"
	"itinero/cmd/fx/controllers_fx"
	"itinero/cmd/fx/db_fx"
	"itinero/cmd/fx/planner_fx"
	"itinero/internal/api/controllers"
	"itinero/pkg/config"
	"itinero/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		catalog_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(itineraryController *controllers.ItineraryController) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine, itineraryController *controllers.ItineraryController) {
	r.GET("/", itineraryController.WelcomeHandler)
	r.POST("/generate-itinerary", itineraryController.GenerateItineraryHandler)
}
