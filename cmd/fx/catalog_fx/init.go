package catalog_fx

import (
	"go.uber.org/fx"

	"itinero/internal/repositories"
)

var Module = fx.Provide(
	repositories.NewPlaceRepository)
