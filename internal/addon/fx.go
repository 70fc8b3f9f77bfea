package addon

import (
	"github.com/pawhaus/boarding/internal/addon/service"
	"go.uber.org/fx"
)

var Module = fx.Module("addon",
	fx.Provide(service.New),
)
