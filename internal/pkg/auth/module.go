package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bnplmart/internal/config"
)

// Module provides operator and per-user authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newSecretHasher),
	fx.Provide(newKeyVerifier),
	fx.Provide(newTokenStrategy),
)

func newSecretHasher() SecretHasher {
	return NewBcryptHasher(0)
}

type verifierParams struct {
	fx.In

	Config *config.Config
	Hasher SecretHasher
}

func newKeyVerifier(p verifierParams) (*KeyVerifier, error) {
	return NewKeyVerifier(p.Hasher, p.Config.OperatorKey)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.TokenSecret, Options{TTL: p.Config.TokenTTL})
}
