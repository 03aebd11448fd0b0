package metrics_fx

import (
	"go.uber.org/fx"
	"travelai/internal/metrics"
)

var Module = fx.Provide(metrics.New)
