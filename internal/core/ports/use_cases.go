// Package ports defines the use case contracts inbound adapters depend on.
// Handlers in the application layer satisfy them; adapters and their tests
// only see these interfaces.
package ports

import (
	"context"

	"coffee/internal/core/application/usecases/commands"
	"coffee/internal/core/application/usecases/queries"
)

// QuoteOrderUseCase prices a coffee selection.
type QuoteOrderUseCase interface {
	// Handle builds the order described by cmd and assigns it a quote ID.
	// Selection errors satisfy errs.IsInvalidArgument.
	Handle(ctx context.Context, cmd commands.QuoteOrderCommand) (commands.Quote, error)
}

// GetMenuUseCase lists the menu an order is priced against.
type GetMenuUseCase interface {
	Handle(ctx context.Context, query queries.GetMenuQuery) (queries.GetMenuQueryResponse, error)
}

var (
	_ QuoteOrderUseCase = commands.QuoteOrderCommandHandler{}
	_ GetMenuUseCase    = queries.GetMenuQueryHandler{}
)
