package order

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"coffee/internal/core/domain/model/kernel"
	"coffee/internal/pkg/errs"
	"coffee/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method or a Builder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is an immutable snapshot of a priced coffee order.
//
// Order follows these invariants:
//   - Base, size and milk are on the menu
//   - Syrups are distinct, non-empty and at most MaxSyrups, kept in insertion order
//   - Sugar is within MinSugar..MaxSugar
//   - The price is not negative
//   - The description is fixed at construction time
//
// All fields are private and no method mutates them. Syrups returns a copy.
type Order struct { //nolint:recvcheck //using for validation
	base        Base
	size        Size
	milk        Milk
	syrups      []string
	sugar       int
	iced        bool
	total       kernel.Money
	description string

	guard guard.ConstructorGuard
}

// Option customizes an Order created by NewOrder.
type Option func(*options)

type options struct {
	milk        Milk
	syrups      []string
	sugar       int
	iced        bool
	price       decimal.Decimal
	priceErr    error
	description *string
}

// WithMilk sets the milk. Defaults to NoMilk.
func WithMilk(milk Milk) Option {
	return func(o *options) { o.milk = milk }
}

// WithSyrups sets the syrups in the given order. The slice is copied.
func WithSyrups(syrups ...string) Option {
	return func(o *options) { o.syrups = slices.Clone(syrups) }
}

// WithSugar sets the teaspoons of sugar. Defaults to 0.
func WithSugar(teaspoons int) Option {
	return func(o *options) { o.sugar = teaspoons }
}

// WithIced marks the drink as iced. Defaults to false.
func WithIced(iced bool) Option {
	return func(o *options) { o.iced = iced }
}

// WithPrice sets the price. Defaults to 0. NaN and infinities make NewOrder fail.
func WithPrice(price float64) Option {
	return func(o *options) {
		if math.IsNaN(price) || math.IsInf(price, 0) {
			o.priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a finite number", price))
			return
		}
		o.price = decimal.NewFromFloat(price)
		o.priceErr = nil
	}
}

// WithDescription sets the description verbatim instead of deriving it.
// An empty description makes String fall back to the price.
func WithDescription(description string) Option {
	return func(o *options) { o.description = &description }
}

func withExactPrice(price decimal.Decimal) Option {
	return func(o *options) {
		o.price = price
		o.priceErr = nil
	}
}

// NewOrder creates a validated Order. Every invalid input is reported, joined with errors.Join.
//
// Example:
//
//	o, err := order.NewOrder(order.Latte, order.Medium,
//	    order.WithMilk(order.OatMilk),
//	    order.WithSyrups("vanilla"),
//	    order.WithPrice(400),
//	)
//	fmt.Println(o) // Output: medium latte with oat milk +vanilla
func NewOrder(base Base, size Size, opts ...Option) (Order, error) {
	cfg := options{milk: NoMilk}
	for _, opt := range opts {
		opt(&cfg)
	}

	o := Order{
		iced:  cfg.iced,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setBase(base),
		o.setSize(size),
		o.setMilk(cfg.milk),
		o.setSyrups(cfg.syrups),
		o.setSugar(cfg.sugar),
		o.setTotal(cfg.price, cfg.priceErr),
	); err != nil {
		return Order{}, err
	}

	if cfg.description != nil {
		o.description = *cfg.description
	} else {
		o.description = o.describe()
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder or a Builder.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o Order) Base() Base {
	return o.base
}

func (o Order) Size() Size {
	return o.size
}

func (o Order) Milk() Milk {
	return o.milk
}

// Syrups returns a copy of the syrups in insertion order.
func (o Order) Syrups() []string {
	return slices.Clone(o.syrups)
}

func (o Order) Sugar() int {
	return o.sugar
}

func (o Order) Iced() bool {
	return o.iced
}

// Price returns the total price as a float.
func (o Order) Price() float64 {
	return o.total.Float64()
}

// Total returns the exact total price.
func (o Order) Total() kernel.Money {
	return o.total
}

func (o Order) Description() string {
	return o.description
}

// String returns the description, or "Coffee order: {price} ₽" when the description is empty.
func (o Order) String() string {
	if o.description != "" {
		return o.description
	}
	return fmt.Sprintf("Coffee order: %s ₽", o.total)
}

// IsEqual compares two orders by value.
func (o Order) IsEqual(other Order) bool {
	return o.base == other.base &&
		o.size == other.size &&
		o.milk == other.milk &&
		slices.Equal(o.syrups, other.syrups) &&
		o.sugar == other.sugar &&
		o.iced == other.iced &&
		o.total.IsEqual(other.total) &&
		o.description == other.description
}

// describe renders "{size} {base}" followed by the extras that are present.
func (o Order) describe() string {
	parts := []string{string(o.size), string(o.base)}

	if o.milk != NoMilk {
		parts = append(parts, fmt.Sprintf("with %s milk", o.milk))
	}
	if len(o.syrups) > 0 {
		parts = append(parts, "+"+strings.Join(o.syrups, ", "))
	}
	if o.iced {
		parts = append(parts, "(iced)")
	}
	if o.sugar > 0 {
		parts = append(parts, fmt.Sprintf("%d tsp sugar", o.sugar))
	}

	return strings.Join(parts, " ")
}

func (o *Order) setBase(base Base) error {
	if err := base.Validate(); err != nil {
		return err
	}
	o.base = base
	return nil
}

func (o *Order) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	o.size = size
	return nil
}

func (o *Order) setMilk(milk Milk) error {
	if err := milk.Validate(); err != nil {
		return err
	}
	o.milk = milk
	return nil
}

func (o *Order) setSyrups(syrups []string) error {
	if len(syrups) > MaxSyrups {
		return errs.NewValueIsOutOfRangeError("syrup count", len(syrups), 0, MaxSyrups)
	}
	for i, name := range syrups {
		if err := validateSyrupName(name); err != nil {
			return err
		}
		if slices.Contains(syrups[:i], name) {
			return errs.NewValueIsInvalidErrorWithCause("syrups", fmt.Errorf("%q is listed more than once", name))
		}
	}
	o.syrups = syrups
	return nil
}

func (o *Order) setSugar(teaspoons int) error {
	if err := validateSugar(teaspoons); err != nil {
		return err
	}
	o.sugar = teaspoons
	return nil
}

func (o *Order) setTotal(price decimal.Decimal, priceErr error) error {
	if priceErr != nil {
		return priceErr
	}
	total, err := kernel.NewMoney(price)
	if err != nil {
		return err
	}
	o.total = total
	return nil
}

func validateSyrupName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("syrup name")
	}
	return nil
}

func validateSugar(teaspoons int) error {
	if teaspoons < MinSugar || teaspoons > MaxSugar {
		return errs.NewValueIsOutOfRangeError("sugar", teaspoons, MinSugar, MaxSugar)
	}
	return nil
}
