package controllers_fx

import (
	"go.uber.org/fx"
	"travelai/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewFunctionsController))
