package queries

import (
	"errors"

	"coffee/internal/core/domain/model/order"
	"coffee/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the price tables an order is quoted against.
//
// Example:
//
//	query := NewGetMenuQuery()
//	handler := NewGetMenuQueryHandler(logger)
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read menu: %w", err)
//	}
//
//	for _, base := range menu.Bases {
//	    fmt.Printf("%s: %s\n", base.Base, base.Price)
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a parameterless menu query.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

type BaseItem struct {
	Base  order.Base
	Price decimal.Decimal
}

type SizeItem struct {
	Size       order.Size
	Multiplier decimal.Decimal
}

type MilkItem struct {
	Milk  order.Milk
	Price decimal.Decimal
}

// GetMenuQueryResponse is the menu read model. Bases and milks are listed by
// price, sizes by multiplier.
type GetMenuQueryResponse struct {
	Bases         []BaseItem
	Sizes         []SizeItem
	Milks         []MilkItem
	SyrupPrice    decimal.Decimal
	IcedSurcharge decimal.Decimal
	MaxSyrups     int
	MinSugar      int
	MaxSugar      int
}
