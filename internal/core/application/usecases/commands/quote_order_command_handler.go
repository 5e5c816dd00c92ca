package commands

import (
	"context"
	"log/slog"

	"coffee/internal/core/domain/model/kernel"
	"coffee/internal/core/domain/model/order"
)

// Quote is a priced order together with the identifier it was quoted under.
type Quote struct {
	ID    kernel.UUID
	Order order.Order
}

// QuoteOrderCommandHandler prices a selection by running it through a fresh order.Builder.
//
// Example:
//
//	handler := NewQuoteOrderCommandHandler(logger)
//	cmd, _ := NewQuoteOrderCommand("espresso", "small", "", nil, nil, true)
//
//	quote, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("quote failed: %w", err)
//	}
//	fmt.Println(quote.Order) // Output: small espresso (iced)
type QuoteOrderCommandHandler struct {
	logger *slog.Logger
}

// NewQuoteOrderCommandHandler creates a handler for quoting coffee orders.
func NewQuoteOrderCommandHandler(logger *slog.Logger) QuoteOrderCommandHandler {
	return QuoteOrderCommandHandler{
		logger: logger.With("component", "quote_order_handler"),
	}
}

// Handle applies the command to a new Builder and builds the Order.
// Base and size are only set when present, so a missing one yields
// order.ErrBaseIsRequired or order.ErrSizeIsRequired.
func (h QuoteOrderCommandHandler) Handle(ctx context.Context, cmd QuoteOrderCommand) (Quote, error) {
	if err := cmd.Validate(); err != nil {
		return Quote{}, err
	}

	builder := order.NewBuilder()
	if cmd.Base() != "" {
		builder.SetBase(cmd.Base())
	}
	if cmd.Size() != "" {
		builder.SetSize(cmd.Size())
	}
	if milk, ok := cmd.Milk(); ok {
		builder.SetMilk(milk)
	}
	for _, syrup := range cmd.Syrups() {
		builder.AddSyrup(syrup)
	}
	if sugar, ok := cmd.Sugar(); ok {
		builder.SetSugar(sugar)
	}
	if iced, ok := cmd.Iced(); ok {
		builder.SetIced(iced)
	}

	o, err := builder.Build()
	if err != nil {
		h.logger.DebugContext(ctx, "Order rejected", "error", err)
		return Quote{}, err
	}

	quote := Quote{ID: kernel.NewUUID(), Order: o}
	h.logger.InfoContext(ctx, "Order quoted",
		"quote_id", quote.ID.String(),
		"description", o.Description(),
		"price", o.Total().String(),
	)

	return quote, nil
}
