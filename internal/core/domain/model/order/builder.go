package order

import (
	"errors"
	"fmt"
	"slices"

	"coffee/internal/pkg/errs"
	"coffee/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrBuilderIsNotConstructed is returned by Build on a Builder not created via NewBuilder.
	ErrBuilderIsNotConstructed = errors.New("Builder must be created via NewBuilder constructor")

	ErrBaseIsRequired = errs.NewValueIsRequiredErrorWithMessage("base", "Base is required")
	ErrSizeIsRequired = errs.NewValueIsRequiredErrorWithMessage("size", "Size is required")

	ErrTooManySyrups = errs.NewValueIsInvalidErrorWithCause(
		"syrups",
		fmt.Errorf("cannot add more than %d syrups", MaxSyrups),
	)
)

// Builder accumulates coffee order selections and builds priced Orders.
//
// Every setter returns the same Builder so calls can be chained. A setter that
// rejects its argument leaves the Builder unchanged and records the error until
// the caller sees it: Err hands it over right away, and otherwise the next Build
// returns it. A later accepted SetBase, SetSize, SetMilk or SetSugar call drops
// the pending error of that setter. AddSyrup errors stay until seen or until
// ClearExtras.
//
// Build does not reset the Builder. It can be changed and built again, and each
// Order it returns is independent of the Builder and of the other Orders.
//
// A nil *Builder accepts setter calls without effect and fails to Build with
// ErrBuilderIsNotConstructed.
//
// A Builder is meant for a single owner; callers sharing one across goroutines
// must synchronize access themselves.
//
// Example:
//
//	o, err := order.NewBuilder().
//	    SetBase(order.Latte).
//	    SetSize(order.Medium).
//	    SetMilk(order.OatMilk).
//	    AddSyrup("vanilla").
//	    AddSyrup("caramel").
//	    SetSugar(2).
//	    Iced().
//	    Build()
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(o) // Output: medium latte with oat milk +vanilla, caramel (iced) 2 tsp sugar
type Builder struct {
	base   Base
	size   Size
	milk   Milk
	syrups []string
	sugar  int
	iced   bool

	pending []rejection
	guard   guard.ConstructorGuard
}

// rejection is an error recorded by a setter for one of the builder fields.
type rejection struct {
	field string
	err   error
}

const (
	fieldBase   = "base"
	fieldSize   = "size"
	fieldMilk   = "milk"
	fieldSyrups = "syrups"
	fieldSugar  = "sugar"
)

// NewBuilder creates an empty Builder: no base, no size, no milk, no syrups,
// no sugar, not iced.
func NewBuilder() *Builder {
	return &Builder{
		milk:   NoMilk,
		syrups: make([]string, 0, MaxSyrups),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Builder was created through NewBuilder.
func (b *Builder) Validate() error {
	if b == nil {
		return ErrBuilderIsNotConstructed
	}
	return b.guard.Validate(ErrBuilderIsNotConstructed)
}

// Err returns the errors recorded by rejected setter calls and forgets them, so
// a handled rejection does not fail the next Build. It returns nil if nothing
// is pending.
func (b *Builder) Err() error {
	if b == nil {
		return ErrBuilderIsNotConstructed
	}

	pending := b.pending
	b.pending = nil

	switch len(pending) {
	case 0:
		return nil
	case 1:
		return pending[0].err
	}

	errList := make([]error, len(pending))
	for i, r := range pending {
		errList[i] = r.err
	}
	return errors.Join(errList...)
}

// SetBase selects the base drink.
func (b *Builder) SetBase(base Base) *Builder {
	if b == nil {
		return b
	}
	if err := base.Validate(); err != nil {
		return b.reject(fieldBase, err)
	}
	b.base = base
	return b.accept(fieldBase)
}

// SetSize selects the cup size.
func (b *Builder) SetSize(size Size) *Builder {
	if b == nil {
		return b
	}
	if err := size.Validate(); err != nil {
		return b.reject(fieldSize, err)
	}
	b.size = size
	return b.accept(fieldSize)
}

// SetMilk selects the milk.
func (b *Builder) SetMilk(milk Milk) *Builder {
	if b == nil {
		return b
	}
	if err := milk.Validate(); err != nil {
		return b.reject(fieldMilk, err)
	}
	b.milk = milk
	return b.accept(fieldMilk)
}

// AddSyrup appends a syrup. Adding a syrup that is already present does nothing.
// Adding a distinct syrup beyond MaxSyrups is rejected with ErrTooManySyrups.
func (b *Builder) AddSyrup(name string) *Builder {
	if b == nil {
		return b
	}
	if slices.Contains(b.syrups, name) {
		return b
	}
	if err := validateSyrupName(name); err != nil {
		return b.reject(fieldSyrups, err)
	}
	if len(b.syrups) >= MaxSyrups {
		return b.reject(fieldSyrups, ErrTooManySyrups)
	}
	b.syrups = append(b.syrups, name)
	return b
}

// SetSugar sets the teaspoons of sugar, MinSugar..MaxSugar inclusive.
func (b *Builder) SetSugar(teaspoons int) *Builder {
	if b == nil {
		return b
	}
	if err := validateSugar(teaspoons); err != nil {
		return b.reject(fieldSugar, err)
	}
	b.sugar = teaspoons
	return b.accept(fieldSugar)
}

// SetIced sets whether the drink is served iced.
func (b *Builder) SetIced(iced bool) *Builder {
	if b == nil {
		return b
	}
	b.iced = iced
	return b
}

// Iced is shorthand for SetIced(true).
func (b *Builder) Iced() *Builder {
	return b.SetIced(true)
}

// ClearExtras resets milk, syrups, sugar and ice to their defaults and drops
// their pending errors. Base and size are kept.
func (b *Builder) ClearExtras() *Builder {
	if b == nil {
		return b
	}
	b.milk = NoMilk
	b.syrups = make([]string, 0, MaxSyrups)
	b.sugar = 0
	b.iced = false
	return b.accept(fieldMilk).accept(fieldSyrups).accept(fieldSugar)
}

// Build returns a new Order from the current selections.
//
// Rejections not yet taken through Err are returned first and forgotten.
// Otherwise ErrBaseIsRequired or ErrSizeIsRequired is returned when those are
// missing. The Builder keeps its selections either way.
func (b *Builder) Build() (Order, error) {
	if err := b.Validate(); err != nil {
		return Order{}, err
	}

	if err := b.Err(); err != nil {
		return Order{}, err
	}

	if b.base == "" {
		return Order{}, ErrBaseIsRequired
	}
	if b.size == "" {
		return Order{}, ErrSizeIsRequired
	}

	return NewOrder(b.base, b.size,
		WithMilk(b.milk),
		WithSyrups(b.syrups...),
		WithSugar(b.sugar),
		WithIced(b.iced),
		withExactPrice(b.price()),
	)
}

// price = base * size multiplier + milk + SyrupPrice per syrup + IcedSurcharge if iced.
func (b *Builder) price() decimal.Decimal {
	total := b.base.Price().Mul(b.size.Multiplier()).
		Add(b.milk.Price()).
		Add(SyrupPrice().Mul(decimal.NewFromInt(int64(len(b.syrups)))))
	if b.iced {
		total = total.Add(IcedSurcharge())
	}
	return total
}

func (b *Builder) reject(field string, err error) *Builder {
	b.pending = append(b.pending, rejection{field: field, err: err})
	return b
}

func (b *Builder) accept(field string) *Builder {
	b.pending = slices.DeleteFunc(b.pending, func(r rejection) bool {
		return r.field == field
	})
	return b
}
