package config

import "go.uber.org/fx"

// Module provides *Config loaded from flags, environment and an optional .env file.
var Module = fx.Provide(Load)
