// Package selfcheck runs the order builder through the scenarios it must always
// satisfy and reports the first one that does not hold.
package selfcheck

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"coffee/internal/core/domain/model/order"
	"coffee/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const priceTolerance = 1e-4

// Check is a single named scenario.
type Check struct {
	Name string
	Run  func() error
}

// Checks returns the scenarios in the order Run executes them.
func Checks() []Check {
	return []Check{
		{"every base and size builds with a positive price", checkAllPairsBuild},
		{"price follows the menu formula", checkPriceFormula},
		{"adding a syrup twice is idempotent", checkDuplicateSyrup},
		{"a fifth syrup is rejected", checkSyrupLimit},
		{"sugar is limited to 0..5", checkSugarRange},
		{"base and size are required", checkRequiredFields},
		{"clearing extras keeps base and size", checkClearExtras},
		{"description lists every extra", checkDescription},
		{"rebuilding leaves earlier orders untouched", checkBuilderReuse},
		{"an order without description prints its price", checkPriceFallback},
	}
}

// Run executes every check and returns the first failure, wrapped with its name.
func Run(ctx context.Context, logger *slog.Logger) error {
	logger = logger.With("component", "selfcheck")

	for _, check := range Checks() {
		if err := check.Run(); err != nil {
			logger.ErrorContext(ctx, "Check failed", "check", check.Name, "error", err)
			return fmt.Errorf("%s: %w", check.Name, err)
		}
		logger.DebugContext(ctx, "Check passed", "check", check.Name)
	}

	logger.InfoContext(ctx, "All checks passed", "count", len(Checks()))
	return nil
}

func expectedPrice(base order.Base, size order.Size, milk order.Milk, syrups int, iced bool) float64 {
	total := base.Price().Mul(size.Multiplier()).
		Add(milk.Price()).
		Add(order.SyrupPrice().Mul(decimal.NewFromInt(int64(syrups))))
	if iced {
		total = total.Add(order.IcedSurcharge())
	}
	return total.InexactFloat64()
}

func expectPrice(o order.Order, want float64) error {
	if math.Abs(o.Price()-want) >= priceTolerance {
		return fmt.Errorf("price is %v, want %v", o.Price(), want)
	}
	return nil
}

func expectInvalidArgument(err error, what string) error {
	if err == nil {
		return fmt.Errorf("%s was accepted", what)
	}
	if !errs.IsInvalidArgument(err) {
		return fmt.Errorf("%s failed with %q, want an invalid argument", what, err)
	}
	return nil
}

func checkAllPairsBuild() error {
	for _, base := range order.Bases() {
		for _, size := range order.Sizes() {
			o, err := order.NewBuilder().SetBase(base).SetSize(size).Build()
			if err != nil {
				return fmt.Errorf("%s %s: %w", size, base, err)
			}
			if o.Price() <= 0 {
				return fmt.Errorf("%s %s costs %v", size, base, o.Price())
			}
		}
	}
	return nil
}

func checkPriceFormula() error {
	syrups := []string{"vanilla", "caramel", "hazelnut"}

	for _, base := range order.Bases() {
		for _, size := range order.Sizes() {
			for _, milk := range order.Milks() {
				for n := 0; n <= len(syrups); n++ {
					for _, iced := range []bool{false, true} {
						b := order.NewBuilder().SetBase(base).SetSize(size).SetMilk(milk).SetIced(iced)
						for _, s := range syrups[:n] {
							b.AddSyrup(s)
						}
						o, err := b.Build()
						if err != nil {
							return err
						}
						if err := expectPrice(o, expectedPrice(base, size, milk, n, iced)); err != nil {
							return fmt.Errorf("%s: %w", o, err)
						}
					}
				}
			}
		}
	}
	return nil
}

func checkDuplicateSyrup() error {
	b := order.NewBuilder().SetBase(order.Latte).SetSize(order.Medium).AddSyrup("vanilla").AddSyrup("caramel")
	before, err := b.Build()
	if err != nil {
		return err
	}

	after, err := b.AddSyrup("vanilla").Build()
	if err != nil {
		return err
	}
	if !slices.Equal(after.Syrups(), before.Syrups()) {
		return fmt.Errorf("syrups are %v, want %v", after.Syrups(), before.Syrups())
	}
	return expectPrice(after, before.Price())
}

func checkSyrupLimit() error {
	b := order.NewBuilder().SetBase(order.Americano).SetSize(order.Small)
	for _, s := range []string{"vanilla", "caramel", "hazelnut", "mint"} {
		b.AddSyrup(s)
	}
	if err := b.Err(); err != nil {
		return fmt.Errorf("four syrups: %w", err)
	}

	if err := expectInvalidArgument(b.AddSyrup("cinnamon").Err(), "a fifth syrup"); err != nil {
		return err
	}
	o, err := b.Build()
	if err != nil {
		return err
	}
	if len(o.Syrups()) != order.MaxSyrups {
		return fmt.Errorf("order has %d syrups, want %d", len(o.Syrups()), order.MaxSyrups)
	}
	return nil
}

func checkSugarRange() error {
	for _, teaspoons := range []int{order.MinSugar - 1, order.MaxSugar + 1} {
		err := order.NewBuilder().SetSugar(teaspoons).Err()
		if err := expectInvalidArgument(err, fmt.Sprintf("sugar %d", teaspoons)); err != nil {
			return err
		}
	}
	for teaspoons := order.MinSugar; teaspoons <= order.MaxSugar; teaspoons++ {
		if err := order.NewBuilder().SetSugar(teaspoons).Err(); err != nil {
			return fmt.Errorf("sugar %d: %w", teaspoons, err)
		}
	}
	return nil
}

func checkRequiredFields() error {
	if _, err := order.NewBuilder().SetSize(order.Small).Build(); err == nil || err.Error() != "Base is required" {
		return fmt.Errorf("missing base gave %v", err)
	}
	if _, err := order.NewBuilder().SetBase(order.Espresso).Build(); err == nil || err.Error() != "Size is required" {
		return fmt.Errorf("missing size gave %v", err)
	}
	return nil
}

func checkClearExtras() error {
	o, err := order.NewBuilder().
		SetBase(order.Cappuccino).
		SetSize(order.Large).
		SetMilk(order.SoyMilk).
		AddSyrup("vanilla").
		SetSugar(3).
		Iced().
		ClearExtras().
		Build()
	if err != nil {
		return err
	}

	if o.Base() != order.Cappuccino || o.Size() != order.Large {
		return fmt.Errorf("base and size are %s %s", o.Base(), o.Size())
	}
	if o.Milk() != order.NoMilk || len(o.Syrups()) != 0 || o.Sugar() != 0 || o.Iced() {
		return fmt.Errorf("extras survived: %s", o)
	}
	return expectPrice(o, expectedPrice(order.Cappuccino, order.Large, order.NoMilk, 0, false))
}

func checkDescription() error {
	o, err := order.NewBuilder().
		SetBase(order.Latte).
		SetSize(order.Medium).
		SetMilk(order.OatMilk).
		AddSyrup("vanilla").
		AddSyrup("caramel").
		SetSugar(2).
		Iced().
		Build()
	if err != nil {
		return err
	}

	const want = "medium latte with oat milk +vanilla, caramel (iced) 2 tsp sugar"
	if o.Description() != want {
		return fmt.Errorf("description is %q, want %q", o.Description(), want)
	}
	if o.String() != want {
		return fmt.Errorf("string is %q, want %q", o.String(), want)
	}
	return nil
}

func checkBuilderReuse() error {
	b := order.NewBuilder().SetBase(order.Latte).SetSize(order.Medium).SetMilk(order.OatMilk).AddSyrup("vanilla")
	first, err := b.Build()
	if err != nil {
		return err
	}
	snapshot := first.String()
	firstPrice := first.Price()

	second, err := b.SetBase(order.Espresso).SetSize(order.Small).ClearExtras().Build()
	if err != nil {
		return err
	}

	if first.String() != snapshot || first.Price() != firstPrice {
		return fmt.Errorf("first order changed to %s", first)
	}
	if second.Price() == first.Price() {
		return fmt.Errorf("both orders cost %v", first.Price())
	}
	return nil
}

func checkPriceFallback() error {
	o, err := order.NewOrder(order.Espresso, order.Small, order.WithPrice(12.5), order.WithDescription(""))
	if err != nil {
		return err
	}

	const want = "Coffee order: 12.50 ₽"
	if o.String() != want {
		return fmt.Errorf("string is %q, want %q", o.String(), want)
	}
	return nil
}
