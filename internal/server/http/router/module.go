package router

import "go.uber.org/fx"

// Module provides the gin engine serving the BNPL API.
var Module = fx.Provide(Setup)
