package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()

	productsPath := filepath.Join(dir, "products.csv")
	require.NoError(t, os.WriteFile(productsPath, []byte(
		"id;description;price;quantityInStock;wholesale\n"+
			"1;Milk;10.00;10;\n"+
			"2;Cream;20.00;5;+\n"), 0o644))

	cardsPath := filepath.Join(dir, "discountCards.csv")
	require.NoError(t, os.WriteFile(cardsPath, []byte(
		"id;number;discountAmount\n"+
			"1;1111;3\n"), 0o644))

	return &Config{
		ProductsPath: productsPath,
		CardsPath:    cardsPath,
		ResultPath:   filepath.Join(dir, "result.csv"),
		Preview:      false,
	}
}

func TestRun_WritesReceipt(t *testing.T) {
	cfg := testConfig(t)

	err := Run(context.Background(), zap.NewNop(), cfg, []string{"1-3", "balanceDebitCard=100"})
	require.NoError(t, err)

	content, err := os.ReadFile(cfg.ResultPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "QTY;DESCRIPTION;PRICE;DISCOUNT;TOTAL")
	assert.Contains(t, string(content), "3;Milk;10.00$;0.00$;30.00$")
	assert.Contains(t, string(content), "TOTAL PRICE;TOTAL DISCOUNT;TOTAL WITH DISCOUNT")
	assert.Contains(t, string(content), "30.00$;0.00$;30.00$")
}

func TestRun_WritesErrorReportOnUnknownProduct(t *testing.T) {
	cfg := testConfig(t)

	err := Run(context.Background(), zap.NewNop(), cfg, []string{"999-1", "balanceDebitCard=100"})
	require.Error(t, err)

	content, err := os.ReadFile(cfg.ResultPath)
	require.NoError(t, err)
	assert.Equal(t, "ERROR\nBAD REQUEST: Product with id: 999 is not exist!", string(content))
}

func TestRun_WritesErrorReportOnBadArgs(t *testing.T) {
	cfg := testConfig(t)

	err := Run(context.Background(), zap.NewNop(), cfg, []string{"balanceDebitCard=100"})
	require.Error(t, err)

	content, err := os.ReadFile(cfg.ResultPath)
	require.NoError(t, err)
	assert.Equal(t, "ERROR\nBAD REQUEST: Order is empty!", string(content))
}

func TestRun_WritesErrorReportOnInsufficientFunds(t *testing.T) {
	cfg := testConfig(t)

	err := Run(context.Background(), zap.NewNop(), cfg, []string{"2-1", "balanceDebitCard=10"})
	require.Error(t, err)

	content, err := os.ReadFile(cfg.ResultPath)
	require.NoError(t, err)
	assert.Equal(t, "ERROR\nNOT ENOUGH MONEY: Not enough money!", string(content))
}

func TestRun_WritesErrorReportOnMissingReferenceData(t *testing.T) {
	cfg := testConfig(t)
	cfg.ProductsPath = filepath.Join(t.TempDir(), "missing.csv")

	err := Run(context.Background(), zap.NewNop(), cfg, []string{"1-1", "balanceDebitCard=100"})
	require.Error(t, err)

	content, err := os.ReadFile(cfg.ResultPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ERROR\nINTERNAL SERVER ERROR: Unable to read file by path:")
}

func TestRun_DiscountCardApplied(t *testing.T) {
	cfg := testConfig(t)

	err := Run(context.Background(), zap.NewNop(), cfg, []string{"1-1", "discountCard=1111", "balanceDebitCard=100"})
	require.NoError(t, err)

	content, err := os.ReadFile(cfg.ResultPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "DISCOUNT CARD;DISCOUNT PERCENTAGE")
	assert.Contains(t, string(content), "1111;3%")
	assert.Contains(t, string(content), "10.00$;0.30$;9.70$")
}
