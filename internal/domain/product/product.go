package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a catalog item available for sale. Products are loaded
// once at startup from reference data and never mutated.
type Product struct {
	ID              int
	Description     string
	Price           decimal.Decimal
	QuantityInStock int
	Wholesale       bool
}

// NotFoundError indicates a requested product id has no reference record.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product with id: %d is not exist!", e.ID)
}

// Label reports the error category used in the error report output.
func (e *NotFoundError) Label() string { return "BAD REQUEST" }

// Store defines read operations over the product catalog.
type Store interface {
	ByID(id int) (*Product, error)
}
