package dog

import (
	"github.com/pawhaus/boarding/internal/dog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("dog.service",
	fx.Provide(service.New),
)
