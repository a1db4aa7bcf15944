package main

import (
	"github.com/codewind/cwsync/src/cwsync/app"
	"go.uber.org/fx"
)

func opts() fx.Option {
	return fx.Options(
		app.Module,
	)
}

func main() {
	fx.New(opts()).Run()
}
