package check

import (
	"time"

	"github.com/shopspring/decimal"
)

// Check is the final cashier receipt: a timestamp captured at calculation
// time, the priced basket lines in order, the discount card block when a
// card number was supplied, and independently accumulated totals. It is
// immutable once built.
type Check struct {
	ID        string
	CreatedAt time.Time
	Positions []BasketPosition
	Discount  *DiscountInfo
	Total     Total
}

// BasketPosition is one priced line of the receipt.
type BasketPosition struct {
	Quantity    int
	Description string
	Price       decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// DiscountInfo describes the discount card applied to the order. It is
// present whenever a card number was supplied, even if the number matched
// no known card.
type DiscountInfo struct {
	CardNumber string
	Percentage int
}

// Total holds the aggregate totals. Each field is accumulated on its own
// rather than derived from the positions, so per-line rounding carries into
// the totals the same way on every prefix of the order.
type Total struct {
	Price             decimal.Decimal
	Discount          decimal.Decimal
	PriceWithDiscount decimal.Decimal
}
