package price

import (
	"github.com/pawhaus/boarding/internal/price/service"
	"go.uber.org/fx"
)

var Module = fx.Module("price.service",
	fx.Provide(service.New),
)
