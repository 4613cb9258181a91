package order

import (
	"github.com/shopspring/decimal"
)

// Order is a validated checkout request: the requested basket lines, the
// available debit card balance, and an optional discount card number
// (empty string means no card). Lines keep the order in which their product
// ids first appeared in the input; duplicate ids are aggregated into the
// first occurrence.
type Order struct {
	Lines            []Line
	BalanceDebitCard decimal.Decimal
	DiscountCard     string
}

// Line is one requested product with its aggregated quantity.
type Line struct {
	ProductID int
	Quantity  int
}

// ValidationError indicates malformed order input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Label reports the error category used in the error report output.
func (e *ValidationError) Label() string { return "BAD REQUEST" }
