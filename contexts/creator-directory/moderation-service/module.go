package moderationservice

import (
	"log/slog"

	httpadapter "vitrine/contexts/creator-directory/moderation-service/adapters/http"
	"vitrine/contexts/creator-directory/moderation-service/adapters/memory"
	"vitrine/contexts/creator-directory/moderation-service/application/commands"
	"vitrine/contexts/creator-directory/moderation-service/application/queries"
	"vitrine/contexts/creator-directory/moderation-service/domain/entities"
	"vitrine/contexts/creator-directory/moderation-service/ports"
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
	createEntry := commands.CreateEntryUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	transitionEntry := commands.TransitionEntryUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	updatePayload := commands.UpdatePayloadUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	deleteEntry := commands.DeleteEntryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateEntry:     createEntry,
			TransitionEntry: transitionEntry,
			UpdatePayload:   updatePayload,
			DeleteEntry:     deleteEntry,
			Queries:         queryUseCase,
			Logger:          deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.Entry, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
