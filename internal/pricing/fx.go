package pricing

import (
	"github.com/pawhaus/boarding/internal/pricing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pricing",
	fx.Provide(service.New),
)
