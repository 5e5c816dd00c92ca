package kernel

import (
	"fmt"
	"math"

	"coffee/internal/pkg/errs"
	"coffee/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyDisplayPlaces is the number of decimal places used when rendering an amount.
const MoneyDisplayPlaces = 2

// ErrMoneyIsNotConstructed is returned when a Money value was not created via its constructors.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromFloat or ZeroMoney constructors")

// Money is an immutable, non-negative monetary amount held as a decimal, so prices
// such as 300*1.2 + 0.2 are stored exactly.
//
// Example:
//
//	m, err := kernel.MoneyFromFloat(12.5)
//	if err != nil {
//	    // negative amount
//	}
//	fmt.Println(m) // Output: 12.50
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates Money from a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// MoneyFromFloat creates Money from a float amount. Negative amounts, NaN and
// infinities are rejected.
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	return NewMoney(decimal.NewFromFloat(amount))
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate checks that the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the exact amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as the nearest float64.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// IsEqual compares amounts numerically, so 12.5 equals 12.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with MoneyDisplayPlaces decimal places, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyDisplayPlaces)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	m.amount = amount
	return nil
}
