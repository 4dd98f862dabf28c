package matcher

import (
	"github.com/paylift/srbooster/internal/matcher/service"
	"go.uber.org/fx"
)

var Module = fx.Module("matcher.service",
	fx.Provide(service.New),
)
