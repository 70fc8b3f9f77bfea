package capacity

import (
	"github.com/pawhaus/boarding/internal/capacity/service"
	"go.uber.org/fx"
)

var Module = fx.Module("capacity",
	fx.Provide(service.New),
)
