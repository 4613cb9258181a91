package card

// DiscountCard represents a customer discount card from reference data.
// The percentage is an integer rate applied to eligible basket lines.
type DiscountCard struct {
	ID         int
	Number     string
	Percentage int
}

// Store defines read operations over the discount card registry.
type Store interface {
	ByNumber(number string) (*DiscountCard, bool)
}
