package season

import (
	"github.com/pawhaus/boarding/internal/season/service"
	"go.uber.org/fx"
)

var Module = fx.Module("season.service",
	fx.Provide(service.New),
)
