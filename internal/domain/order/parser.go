package order

import (
	"regexp"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Console argument grammar: "3-1" requests one unit of product 3,
// "discountCard=1111" names a discount card, "balanceDebitCard=100.50" sets
// the available balance. Anything else is ignored.
var (
	itemPattern    = regexp.MustCompile(`^(\d+)-(\d+)$`)
	cardPattern    = regexp.MustCompile(`^discountCard=(\d{4})$`)
	balancePattern = regexp.MustCompile(`^balanceDebitCard=(-?\d+(\.\d{1,2})?)$`)
)

// ParseArgs builds an Order from command-line arguments. The order must
// contain at least one item and a balance; both failures are ValidationErrors
// so the caller can route them to the error report.
func ParseArgs(args []string) (*Order, error) {
	var (
		lines     []Line
		lineIndex = make(map[int]int)
		balance   *decimal.Decimal
		cardNum   string
	)

	for _, arg := range args {
		if m := itemPattern.FindStringSubmatch(arg); m != nil {
			id, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, errors.Wrapf(err, "parse product id %q", m[1])
			}
			qty, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, errors.Wrapf(err, "parse quantity %q", m[2])
			}
			if i, ok := lineIndex[id]; ok {
				lines[i].Quantity += qty
			} else {
				lineIndex[id] = len(lines)
				lines = append(lines, Line{ProductID: id, Quantity: qty})
			}
			continue
		}

		if m := cardPattern.FindStringSubmatch(arg); m != nil {
			cardNum = m[1]
			continue
		}

		if m := balancePattern.FindStringSubmatch(arg); m != nil {
			b, err := decimal.NewFromString(m[1])
			if err != nil {
				return nil, errors.Wrapf(err, "parse balance %q", m[1])
			}
			balance = &b
		}
	}

	if len(lines) == 0 {
		return nil, &ValidationError{Reason: "Order is empty!"}
	}
	if balance == nil {
		return nil, &ValidationError{Reason: "Balance Debit Card is required!"}
	}

	return &Order{
		Lines:            lines,
		BalanceDebitCard: *balance,
		DiscountCard:     cardNum,
	}, nil
}
