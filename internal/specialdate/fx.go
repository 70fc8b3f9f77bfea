package specialdate

import (
	"github.com/pawhaus/boarding/internal/specialdate/service"
	"go.uber.org/fx"
)

var Module = fx.Module("specialdate",
	fx.Provide(service.New),
)
