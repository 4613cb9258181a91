package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/clevertec/cashier-check/internal/domain/check"
)

const (
	columnDelimiter = ";"
	dateLayout      = "2006-01-02"
	timeLayout      = "15:04:05"
)

// Receipt serializes a check into semicolon-delimited sections: date/time,
// basket positions, the optional discount card block, and totals. Sections
// are separated by blank lines and trailing blank lines are trimmed. This
// shape is a compatibility contract with consumers of the result file.
func Receipt(chk *check.Check) string {
	var b strings.Builder

	b.WriteString("Date" + columnDelimiter + "Time\n")
	b.WriteString(chk.CreatedAt.Format(dateLayout) + columnDelimiter + chk.CreatedAt.Format(timeLayout) + "\n\n")

	b.WriteString(strings.Join([]string{"QTY", "DESCRIPTION", "PRICE", "DISCOUNT", "TOTAL"}, columnDelimiter) + "\n")
	for _, p := range chk.Positions {
		fmt.Fprintf(&b, "%d%s%s%s%s%s%s%s%s\n",
			p.Quantity, columnDelimiter,
			p.Description, columnDelimiter,
			money(p.Price), columnDelimiter,
			money(p.Discount), columnDelimiter,
			money(p.Total),
		)
	}
	b.WriteString("\n")

	if chk.Discount != nil {
		b.WriteString("DISCOUNT CARD" + columnDelimiter + "DISCOUNT PERCENTAGE\n")
		fmt.Fprintf(&b, "%s%s%d%%\n\n", chk.Discount.CardNumber, columnDelimiter, chk.Discount.Percentage)
	}

	b.WriteString("TOTAL PRICE" + columnDelimiter + "TOTAL DISCOUNT" + columnDelimiter + "TOTAL WITH DISCOUNT\n")
	fmt.Fprintf(&b, "%s%s%s%s%s\n",
		money(chk.Total.Price), columnDelimiter,
		money(chk.Total.Discount), columnDelimiter,
		money(chk.Total.PriceWithDiscount),
	)

	return strings.TrimRight(b.String(), "\n")
}

// money renders a monetary value with two decimals, comma-grouped thousands,
// and a trailing dollar sign: 1234.5 -> "1,234.50$".
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var grouped strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	out := grouped.String() + fracPart + "$"
	if neg {
		out = "-" + out
	}
	return out
}
