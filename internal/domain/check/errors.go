package check

import (
	"github.com/shopspring/decimal"
)

// ValidationError indicates an order line that cannot be fulfilled, such as
// a requested quantity exceeding the product's stock.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Label reports the error category used in the error report output.
func (e *ValidationError) Label() string { return "BAD REQUEST" }

// InsufficientFundsError indicates the running total with discount exceeded
// the order's balance at some line.
type InsufficientFundsError struct {
	Balance  decimal.Decimal
	Required decimal.Decimal
}

func (e *InsufficientFundsError) Error() string { return "Not enough money!" }

// Label reports the error category used in the error report output.
func (e *InsufficientFundsError) Label() string { return "NOT ENOUGH MONEY" }
