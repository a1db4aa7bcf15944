package gateway

import (
	"github.com/codewind/cwsync/src/cwsync/gateway/auth"
	pfeclient "github.com/codewind/cwsync/src/cwsync/gateway/pfe-client"
	"go.uber.org/fx"
)

// Module provides the daemon's outbound gateways to Codewind servers.
var Module = fx.Options(
	fx.Provide(auth.New),
	fx.Provide(pfeclient.New),
)
