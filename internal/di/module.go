package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bnplmart/internal/app"
	"github.com/polkiloo/bnplmart/internal/config"
	"github.com/polkiloo/bnplmart/internal/logger"
	"github.com/polkiloo/bnplmart/internal/pkg/auth"
	"github.com/polkiloo/bnplmart/internal/server/http/handlers"
	"github.com/polkiloo/bnplmart/internal/server/http/middleware"
	"github.com/polkiloo/bnplmart/internal/server/http/router"
	"github.com/polkiloo/bnplmart/internal/storage"
	"github.com/polkiloo/bnplmart/internal/usecase"
)

// Module composes the whole application graph. Extra options are appended
// last so callers can replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(f *app.BNPLFacade) handlers.BNPLFacade { return f }),
		fx.Provide(func(v *auth.KeyVerifier) middleware.KeyVerifier { return v }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
