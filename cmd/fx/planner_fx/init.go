package planner_fx

import (
	"context"
	"log"

	"go.uber.org/fx"

	"itinero/internal/services"
	"itinero/pkg/config"
	"itinero/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(providePlannerClient),
	fx.Provide(services.NewPlannerService))

func providePlannerClient(lc fx.Lifecycle, cfg *config.Config) utils.PlannerClientInterface {
	client, err := utils.NewPlannerClient(cfg.PlannerProvider, cfg.PlannerAPIKey(), cfg.PlannerModel)
	if err != nil {
		log.Fatalf("Planner client error: %v", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client
}
