package audit

import (
	"github.com/paylift/srbooster/internal/audit/repository"
	"github.com/paylift/srbooster/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
