package handler

import (
	controller "github.com/codewind/cwsync/src/cwsync/controller"
	"github.com/codewind/cwsync/src/cwsync/handler/editor"
	"github.com/codewind/cwsync/src/cwsync/repository/connections"
	"go.uber.org/fx"
)

// Module provides the cwsync daemon's inbound surface into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(connections.New),
	fx.Provide(editor.New),
	fx.Invoke(func(h editor.Handler) {}),
)
