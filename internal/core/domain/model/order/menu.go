package order

import (
	"fmt"
	"slices"
	"strings"

	"coffee/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Base is the drink a coffee order is made from.
type Base string

const (
	Espresso   Base = "espresso"
	Americano  Base = "americano"
	Latte      Base = "latte"
	Cappuccino Base = "cappuccino"
)

// Size is the cup size. It scales the base price.
type Size string

const (
	Small  Size = "small"
	Medium Size = "medium"
	Large  Size = "large"
)

// Milk is the milk added to the drink. NoMilk is the default.
type Milk string

const (
	NoMilk    Milk = "none"
	WholeMilk Milk = "whole"
	SkimMilk  Milk = "skim"
	OatMilk   Milk = "oat"
	SoyMilk   Milk = "soy"
)

const (
	// MaxSyrups is the number of distinct syrups an order may carry.
	MaxSyrups = 4
	// MinSugar and MaxSugar bound the teaspoons of sugar, inclusive.
	MinSugar = 0
	MaxSugar = 5
)

// SyrupPrice is charged once per distinct syrup.
func SyrupPrice() decimal.Decimal {
	return decimal.NewFromInt(40)
}

// IcedSurcharge is added to iced drinks.
func IcedSurcharge() decimal.Decimal {
	return decimal.RequireFromString("0.2")
}

// The price tables are rebuilt on every call so that callers can never mutate them.

func getBasePrices() map[Base]decimal.Decimal {
	return map[Base]decimal.Decimal{
		Espresso:   decimal.NewFromInt(200),
		Americano:  decimal.NewFromInt(250),
		Latte:      decimal.NewFromInt(300),
		Cappuccino: decimal.NewFromInt(320),
	}
}

func getSizeMultipliers() map[Size]decimal.Decimal {
	return map[Size]decimal.Decimal{
		Small:  decimal.RequireFromString("1.0"),
		Medium: decimal.RequireFromString("1.2"),
		Large:  decimal.RequireFromString("1.4"),
	}
}

func getMilkPrices() map[Milk]decimal.Decimal {
	return map[Milk]decimal.Decimal{
		NoMilk:    decimal.Zero,
		WholeMilk: decimal.NewFromInt(30),
		SkimMilk:  decimal.NewFromInt(30),
		OatMilk:   decimal.NewFromInt(60),
		SoyMilk:   decimal.NewFromInt(50),
	}
}

// Bases lists every base on the menu, cheapest first.
func Bases() []Base {
	return sortedKeys(getBasePrices())
}

// Sizes lists every size, smallest multiplier first.
func Sizes() []Size {
	return sortedKeys(getSizeMultipliers())
}

// Milks lists every milk option, cheapest first.
func Milks() []Milk {
	return sortedKeys(getMilkPrices())
}

// Validate returns ErrValueIsInvalid if the base is not on the menu.
func (b Base) Validate() error {
	if _, ok := getBasePrices()[b]; !ok {
		return invalidChoice("base", string(b), Bases())
	}
	return nil
}

// Price returns the base price before the size multiplier. Unknown bases cost zero.
func (b Base) Price() decimal.Decimal {
	return getBasePrices()[b]
}

func (b Base) String() string {
	return string(b)
}

// Validate returns ErrValueIsInvalid if the size is not on the menu.
func (s Size) Validate() error {
	if _, ok := getSizeMultipliers()[s]; !ok {
		return invalidChoice("size", string(s), Sizes())
	}
	return nil
}

// Multiplier returns the factor applied to the base price. Unknown sizes return zero.
func (s Size) Multiplier() decimal.Decimal {
	return getSizeMultipliers()[s]
}

func (s Size) String() string {
	return string(s)
}

// Validate returns ErrValueIsInvalid if the milk is not on the menu.
func (m Milk) Validate() error {
	if _, ok := getMilkPrices()[m]; !ok {
		return invalidChoice("milk", string(m), Milks())
	}
	return nil
}

// Price returns the milk surcharge. Unknown milks cost zero.
func (m Milk) Price() decimal.Decimal {
	return getMilkPrices()[m]
}

func (m Milk) String() string {
	return string(m)
}

// sortedKeys orders keys by price, then by name, so listings are deterministic.
func sortedKeys[K ~string](table map[K]decimal.Decimal) []K {
	keys := make([]K, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b K) int {
		if c := table[a].Cmp(table[b]); c != 0 {
			return c
		}
		return strings.Compare(string(a), string(b))
	})
	return keys
}

func invalidChoice[K ~string](param, value string, choices []K) error {
	names := make([]string, len(choices))
	for i, c := range choices {
		names[i] = string(c)
	}
	return errs.NewValueIsInvalidErrorWithCause(
		param,
		fmt.Errorf("%q is not one of %s", value, strings.Join(names, ", ")),
	)
}
