package csvfile

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/clevertec/cashier-check/internal/domain/card"
	"github.com/clevertec/cashier-check/internal/domain/product"
)

// Wholesale-eligible products are marked with this value in the reference
// data; any other value means not eligible.
const wholesaleTrueValue = "+"

var (
	_ product.Store = (*Store)(nil)
	_ card.Store    = (*Store)(nil)
)

// Store is an immutable in-memory snapshot of the reference data, loaded
// once from CSV files at startup. It implements both the product and the
// discount card store contracts.
type Store struct {
	products map[int]product.Product
	cards    map[string]card.DiscountCard
}

// Load reads the product catalog and the discount card registry from the
// given files. The two files load concurrently; the first failure aborts
// both.
func Load(ctx context.Context, productsPath, cardsPath string) (*Store, error) {
	var (
		products map[int]product.Product
		cards    map[string]card.DiscountCard
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = loadProducts(ctx, productsPath)
		return err
	})
	g.Go(func() error {
		var err error
		cards, err = loadCards(ctx, cardsPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Store{products: products, cards: cards}, nil
}

// ByID resolves a product by its id.
func (s *Store) ByID(id int) (*product.Product, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, &product.NotFoundError{ID: id}
	}
	return &p, nil
}

// ByNumber resolves a discount card by its number. Absence of a match is
// not an error; callers fall back to the default discount.
func (s *Store) ByNumber(number string) (*card.DiscountCard, bool) {
	c, ok := s.cards[number]
	if !ok {
		return nil, false
	}
	return &c, true
}

// ProductCount reports the number of loaded products.
func (s *Store) ProductCount() int { return len(s.products) }

// CardCount reports the number of loaded discount cards.
func (s *Store) CardCount() int { return len(s.cards) }

// loadProducts reads rows of the form id;description;price;stock;wholesale.
func loadProducts(ctx context.Context, path string) (map[int]product.Product, error) {
	products := make(map[int]product.Product)

	err := readRows(ctx, path, 5, func(fields []string) error {
		id, err := parsePositiveInt(path, "id", fields[0])
		if err != nil {
			return err
		}
		description, err := parseNonEmpty(path, "description", fields[1])
		if err != nil {
			return err
		}
		price, err := parsePositiveDecimal(path, "price", fields[2])
		if err != nil {
			return err
		}
		stock, err := parsePositiveInt(path, "quantityInStock", fields[3])
		if err != nil {
			return err
		}

		products[id] = product.Product{
			ID:              id,
			Description:     description,
			Price:           price,
			QuantityInStock: stock,
			Wholesale:       fields[4] == wholesaleTrueValue,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// loadCards reads rows of the form id;number;percentage. Cards are keyed by
// number since the engine only ever looks them up by the number supplied on
// the order.
func loadCards(ctx context.Context, path string) (map[string]card.DiscountCard, error) {
	cards := make(map[string]card.DiscountCard)

	err := readRows(ctx, path, 3, func(fields []string) error {
		id, err := parsePositiveInt(path, "id", fields[0])
		if err != nil {
			return err
		}
		number, err := parseNonEmpty(path, "number", fields[1])
		if err != nil {
			return err
		}
		percentage, err := parsePositiveInt(path, "discountAmount", fields[2])
		if err != nil {
			return err
		}

		cards[number] = card.DiscountCard{
			ID:         id,
			Number:     number,
			Percentage: percentage,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cards, nil
}
