package request

import (
	"github.com/paylift/srbooster/internal/request/repository"
	"github.com/paylift/srbooster/internal/request/service"
	"go.uber.org/fx"
)

var Module = fx.Module("request.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
