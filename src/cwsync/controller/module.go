package controller

import (
	"github.com/codewind/cwsync/src/cwsync/controller/connect"
	"github.com/codewind/cwsync/src/cwsync/controller/connection"
	"github.com/codewind/cwsync/src/cwsync/controller/registry"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(connection.NewFactory),
	fx.Provide(registry.New),
	fx.Provide(connect.New),
	fx.Provide(connect.NewSyncer),
)
