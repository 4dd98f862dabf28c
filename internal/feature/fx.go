package feature

import (
	"github.com/paylift/srbooster/internal/feature/repository"
	"github.com/paylift/srbooster/internal/feature/service"
	"go.uber.org/fx"
)

var Module = fx.Module("feature.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
