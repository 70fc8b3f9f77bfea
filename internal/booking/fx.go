package booking

import (
	"github.com/pawhaus/boarding/internal/booking/repository"
	"github.com/pawhaus/boarding/internal/booking/service"
	"go.uber.org/fx"
)

var Module = fx.Module("booking",
	fx.Provide(repository.New),
	fx.Provide(service.New),
)
