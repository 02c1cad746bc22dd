package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/bnplmart/internal/config"
	"github.com/polkiloo/bnplmart/internal/domain/repository"
)

// EngineParams groups dependencies required to build the rules engine.
type EngineParams struct {
	fx.In

	Config  *config.Config
	Journal repository.JournalRepository
	Logger  *slog.Logger
}

// NewEngine builds the rules engine with the configured BNPL term.
func NewEngine(p EngineParams) *RulesEngine {
	return NewRulesEngine(p.Journal, p.Logger, WithTerm(p.Config.BNPLTerm))
}

// Module provides the BNPL rules engine to the fx container.
var Module = fx.Provide(NewEngine)
