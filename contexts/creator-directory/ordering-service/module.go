package orderingservice

import (
	"log/slog"

	httpadapter "vitrine/contexts/creator-directory/ordering-service/adapters/http"
	"vitrine/contexts/creator-directory/ordering-service/adapters/memory"
	"vitrine/contexts/creator-directory/ordering-service/application/commands"
	"vitrine/contexts/creator-directory/ordering-service/application/queries"
	"vitrine/contexts/creator-directory/ordering-service/application/workers"
	"vitrine/contexts/creator-directory/ordering-service/domain/entities"
	"vitrine/contexts/creator-directory/ordering-service/ports"
)

type Module struct {
	Handler       httpadapter.Handler
	InsertDefault commands.InsertDefaultUseCase
	Store         *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	reorder := commands.ReorderUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	insertDefault := commands.InsertDefaultUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			Reorder:       reorder,
			InsertDefault: insertDefault,
			Queries:       queryUseCase,
			Logger:        deps.Logger,
		},
		InsertDefault: insertDefault,
	}
}

// NewConsumer builds the worker that feeds accepted entries into the
// ranking.
func (m Module) NewConsumer(subscriber ports.EventSubscriber, consumerGroup string, logger *slog.Logger) workers.EntryAcceptedConsumer {
	return workers.EntryAcceptedConsumer{
		Subscriber:    subscriber,
		InsertDefault: m.InsertDefault,
		ConsumerGroup: consumerGroup,
		Logger:        logger,
	}
}

func NewInMemoryModule(seed []entities.RankedEntry, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository: store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
