package merchant

import (
	"github.com/paylift/srbooster/internal/merchant/repository"
	"github.com/paylift/srbooster/internal/merchant/service"
	"go.uber.org/fx"
)

var Module = fx.Module("merchant.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
