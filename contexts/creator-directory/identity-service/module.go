package identityservice

import (
	"log/slog"

	httpadapter "vitrine/contexts/creator-directory/identity-service/adapters/http"
	"vitrine/contexts/creator-directory/identity-service/adapters/memory"
	"vitrine/contexts/creator-directory/identity-service/application/commands"
	"vitrine/contexts/creator-directory/identity-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	resolveSubmitter := commands.ResolveSubmitterUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	claimSession := commands.ClaimSessionUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			ResolveSubmitter: resolveSubmitter,
			ClaimSession:     claimSession,
			Logger:           deps.Logger,
		},
	}
}

// NewInMemoryModule wires the session store against the provided entry
// claimer (the moderation entry store in local runs and tests).
func NewInMemoryModule(entries ports.EntryClaimer, logger *slog.Logger) Module {
	store := memory.NewStore(entries)
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
