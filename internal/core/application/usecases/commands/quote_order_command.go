package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"coffee/internal/core/domain/model/order"
	"coffee/internal/pkg/errs"
	"coffee/internal/pkg/guard"
)

var (
	ErrQuoteOrderCommandIsNotConstructed = errors.New(
		"QuoteOrderCommand must be created via NewQuoteOrderCommand constructor",
	)
)

// QuoteOrderCommand carries a customer's coffee selection as it arrives from a transport.
// Values are only type-checked here; menu rules are enforced by order.Builder when the
// command is handled.
//
// Sugar and iced are loosely typed: nil means "not provided", sugar must otherwise be
// an integer (a Go integer or a json.Number holding an integer literal) and iced a bool.
//
// Example:
//
//	cmd, err := NewQuoteOrderCommand("latte", "medium", "oat", []string{"vanilla"}, 2, true)
//	if err != nil {
//	    return fmt.Errorf("invalid selection: %w", err)
//	}
//
//	quote, err := handler.Handle(ctx, cmd)
type QuoteOrderCommand struct { //nolint:recvcheck //using for validation
	base   order.Base
	size   order.Size
	milk   order.Milk
	syrups []string
	sugar  *int
	iced   *bool

	guard guard.ConstructorGuard
}

// NewQuoteOrderCommand creates a command from raw selection values.
// Returns ErrTypeIsInvalid errors, joined, for a non-integer sugar or a non-boolean iced,
// and ErrValueIsOutOfRange for a sugar integer too large to hold.
func NewQuoteOrderCommand(base, size, milk string, syrups []string, sugar, iced any) (QuoteOrderCommand, error) {
	cmd := QuoteOrderCommand{
		base:   order.Base(base),
		size:   order.Size(size),
		milk:   order.Milk(milk),
		syrups: slices.Clone(syrups),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSugar(sugar),
		cmd.setIced(iced),
	); err != nil {
		return QuoteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c QuoteOrderCommand) Validate() error {
	return c.guard.Validate(ErrQuoteOrderCommandIsNotConstructed)
}

func (c QuoteOrderCommand) Base() order.Base {
	return c.base
}

func (c QuoteOrderCommand) Size() order.Size {
	return c.size
}

// Milk returns the milk and whether one was provided.
func (c QuoteOrderCommand) Milk() (order.Milk, bool) {
	return c.milk, c.milk != ""
}

// Syrups returns a copy of the requested syrups in request order.
func (c QuoteOrderCommand) Syrups() []string {
	return slices.Clone(c.syrups)
}

// Sugar returns the teaspoons of sugar and whether they were provided.
func (c QuoteOrderCommand) Sugar() (int, bool) {
	if c.sugar == nil {
		return 0, false
	}
	return *c.sugar, true
}

// Iced returns the iced flag and whether it was provided.
func (c QuoteOrderCommand) Iced() (bool, bool) {
	if c.iced == nil {
		return false, false
	}
	return *c.iced, true
}

func (c *QuoteOrderCommand) setSugar(value any) error {
	if value == nil {
		return nil
	}

	teaspoons, err := toInt(value)
	if err != nil {
		return err
	}

	c.sugar = &teaspoons
	return nil
}

func (c *QuoteOrderCommand) setIced(value any) error {
	if value == nil {
		return nil
	}

	iced, ok := value.(bool)
	if !ok {
		return errs.NewTypeIsInvalidError("iced", "a boolean", value)
	}

	c.iced = &iced
	return nil
}

// toInt accepts Go integer kinds and integer JSON literals. Booleans, floats and
// strings are rejected even when they look like integers. Integers too large for
// an int are reported as out of range rather than as a type error.
func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, sugarOutOfRange(v)
		}
		return int(v), nil
	case uint:
		return fromUnsigned(uint64(v))
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return fromUnsigned(uint64(v))
	case uint64:
		return fromUnsigned(v)
	case uintptr:
		return fromUnsigned(uint64(v))
	case json.Number:
		n, err := v.Int64()
		if errors.Is(err, strconv.ErrRange) {
			return 0, sugarOutOfRange(v)
		}
		if err != nil {
			return 0, errs.NewTypeIsInvalidErrorWithCause("sugar", "an integer", value,
				fmt.Errorf("%s is not an integer literal", v))
		}
		return toInt(n)
	default:
		return 0, errs.NewTypeIsInvalidError("sugar", "an integer", value)
	}
}

func fromUnsigned(v uint64) (int, error) {
	if v > math.MaxInt {
		return 0, sugarOutOfRange(v)
	}
	return int(v), nil
}

func sugarOutOfRange(value any) error {
	return errs.NewValueIsOutOfRangeError("sugar", value, order.MinSugar, order.MaxSugar)
}
