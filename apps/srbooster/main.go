package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/paylift/srbooster/internal/clock"
	"github.com/paylift/srbooster/internal/config"
	"github.com/paylift/srbooster/internal/migration"
	"github.com/paylift/srbooster/internal/observability"
	"github.com/paylift/srbooster/internal/server"
	"github.com/paylift/srbooster/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
