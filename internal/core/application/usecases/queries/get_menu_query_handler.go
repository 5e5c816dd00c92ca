package queries

import (
	"context"
	"log/slog"

	"coffee/internal/core/domain/model/order"
)

// GetMenuQueryHandler assembles the menu read model from the order package tables.
type GetMenuQueryHandler struct {
	logger *slog.Logger
}

func NewGetMenuQueryHandler(logger *slog.Logger) GetMenuQueryHandler {
	return GetMenuQueryHandler{
		logger: logger.With("component", "get_menu_handler"),
	}
}

// Handle returns a fresh copy of the menu on every call.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	bases := order.Bases()
	sizes := order.Sizes()
	milks := order.Milks()

	menu := GetMenuQueryResponse{
		Bases:         make([]BaseItem, 0, len(bases)),
		Sizes:         make([]SizeItem, 0, len(sizes)),
		Milks:         make([]MilkItem, 0, len(milks)),
		SyrupPrice:    order.SyrupPrice(),
		IcedSurcharge: order.IcedSurcharge(),
		MaxSyrups:     order.MaxSyrups,
		MinSugar:      order.MinSugar,
		MaxSugar:      order.MaxSugar,
	}

	for _, base := range bases {
		menu.Bases = append(menu.Bases, BaseItem{Base: base, Price: base.Price()})
	}
	for _, size := range sizes {
		menu.Sizes = append(menu.Sizes, SizeItem{Size: size, Multiplier: size.Multiplier()})
	}
	for _, milk := range milks {
		menu.Milks = append(menu.Milks, MilkItem{Milk: milk, Price: milk.Price()})
	}

	h.logger.DebugContext(ctx, "Menu read",
		"bases", len(menu.Bases),
		"sizes", len(menu.Sizes),
		"milks", len(menu.Milks),
	)

	return menu, nil
}
