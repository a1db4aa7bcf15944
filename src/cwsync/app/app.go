package app

import (
	"context"
	"time"

	"github.com/codewind/cwsync/src/cwsync/gateway"
	ideclient "github.com/codewind/cwsync/src/cwsync/gateway/ide-client"
	"github.com/codewind/cwsync/src/cwsync/handler"
	"github.com/codewind/cwsync/src/cwsync/internal/clock"
	"github.com/codewind/cwsync/src/cwsync/internal/core"
	"github.com/codewind/cwsync/src/cwsync/internal/fs"
	"github.com/codewind/cwsync/src/cwsync/internal/infofile"
	"github.com/codewind/cwsync/src/cwsync/internal/jsonrpcfx"
	"github.com/codewind/cwsync/src/cwsync/internal/settings"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
)

// Module defines the cwsync daemon application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	fs.Module,
	clock.Module,
	infofile.Module,
	core.ConfigModule,
	core.LoggerModule,
	settings.Module,
	fx.Provide(ideclient.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "cwsync",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment: EnvLocal,
		}
	}),
)
