package check

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clevertec/cashier-check/internal/domain/card"
	"github.com/clevertec/cashier-check/internal/domain/order"
	"github.com/clevertec/cashier-check/internal/domain/product"
)

const (
	wholesaleMinQuantity  = 5
	wholesalePercentage   = 10
	defaultCardPercentage = 2
	moneyScale            = 2
)

var hundred = decimal.NewFromInt(100)

// Calculator prices orders against the reference data stores and assembles
// receipts. It performs no I/O: both stores are in-memory snapshots loaded
// at startup.
type Calculator struct {
	products product.Store
	cards    card.Store
	now      func() time.Time
}

// NewCalculator creates a Calculator with the required reference data stores.
func NewCalculator(products product.Store, cards card.Store) *Calculator {
	return &Calculator{
		products: products,
		cards:    cards,
		now:      time.Now,
	}
}

// Calculate prices the order line by line and returns the assembled receipt.
// Any failure aborts the whole calculation: there is no partial receipt.
// A card number that matches no known card is not an error; the default
// percentage applies instead.
func (c *Calculator) Calculate(o *order.Order) (*Check, error) {
	cardSpecified := o.DiscountCard != ""

	var matched *card.DiscountCard
	if cardSpecified {
		matched, _ = c.cards.ByNumber(o.DiscountCard)
	}

	balance := o.BalanceDebitCard.Round(moneyScale)

	totalPrice := decimal.Zero
	totalDiscount := decimal.Zero
	totalWithDiscount := decimal.Zero

	positions := make([]BasketPosition, 0, len(o.Lines))
	for _, line := range o.Lines {
		p, err := c.products.ByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if line.Quantity > p.QuantityInStock {
			return nil, &ValidationError{Reason: "Quantity is too much!"}
		}

		pct := discountPercentage(line.Quantity, p.Wholesale, matched, cardSpecified)
		qty := decimal.NewFromInt(int64(line.Quantity))
		unitDiscount := p.Price.Mul(discountRatio(pct))
		lineDiscount := unitDiscount.Mul(qty).Round(moneyScale)
		lineTotal := p.Price.Mul(qty).Round(moneyScale)

		// Each accumulator is re-rounded after every update so that the
		// prefix-sum invariant holds at 2-decimal scale on every line.
		totalDiscount = totalDiscount.Add(lineDiscount).Round(moneyScale)
		totalPrice = totalPrice.Add(lineTotal).Round(moneyScale)
		totalWithDiscount = totalPrice.Sub(totalDiscount).Round(moneyScale)

		if balance.LessThan(totalWithDiscount) {
			return nil, &InsufficientFundsError{Balance: balance, Required: totalWithDiscount}
		}

		positions = append(positions, BasketPosition{
			Quantity:    line.Quantity,
			Description: p.Description,
			Price:       p.Price,
			Discount:    lineDiscount,
			Total:       lineTotal,
		})
	}

	var info *DiscountInfo
	if cardSpecified {
		pct := defaultCardPercentage
		if matched != nil {
			pct = matched.Percentage
		}
		info = &DiscountInfo{CardNumber: o.DiscountCard, Percentage: pct}
	}

	return &Check{
		ID:        uuid.New().String(),
		CreatedAt: c.now(),
		Positions: positions,
		Discount:  info,
		Total: Total{
			Price:             totalPrice,
			Discount:          totalDiscount,
			PriceWithDiscount: totalWithDiscount,
		},
	}, nil
}

// discountPercentage selects the rate for one basket line. The wholesale
// rule takes precedence over any card; an unmatched but supplied card still
// earns the default rate.
func discountPercentage(quantity int, wholesale bool, matched *card.DiscountCard, cardSpecified bool) int {
	switch {
	case quantity >= wholesaleMinQuantity && wholesale:
		return wholesalePercentage
	case matched != nil:
		return matched.Percentage
	case cardSpecified:
		return defaultCardPercentage
	default:
		return 0
	}
}

// discountRatio converts an integer percentage into a price multiplier.
// The ratio is rounded to 2 decimals before multiplying; receipts produced
// by earlier versions of this tool depend on that exact behaviour.
func discountRatio(pct int) decimal.Decimal {
	return decimal.NewFromInt(int64(pct)).Div(hundred).Round(moneyScale)
}
