package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/pawhaus/boarding/internal/clock"
	"github.com/pawhaus/boarding/internal/config"
	"github.com/pawhaus/boarding/internal/logger"
	"github.com/pawhaus/boarding/internal/migration"
	"github.com/pawhaus/boarding/internal/observability"
	"github.com/pawhaus/boarding/internal/server"
	"github.com/pawhaus/boarding/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
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
