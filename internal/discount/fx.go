package discount

import (
	"github.com/pawhaus/boarding/internal/discount/service"
	"go.uber.org/fx"
)

var Module = fx.Module("discount",
	fx.Provide(service.New),
)
