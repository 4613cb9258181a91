package app

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/clevertec/cashier-check/internal/domain/check"
	"github.com/clevertec/cashier-check/internal/domain/order"
	"github.com/clevertec/cashier-check/internal/render"
	"github.com/clevertec/cashier-check/internal/storage/csvfile"
)

// Run executes one checkout calculation end to end: parse the order from
// the command-line arguments, load reference data, price the order, and
// write the receipt. Any failure is written to the same result file as a
// single-row error report and still returned to the caller, so the process
// always produces an output artifact but exits non-zero on failure.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config, args []string) error {
	ord, err := order.ParseArgs(args)
	if err != nil {
		return report(lg, cfg, err)
	}
	lg.Info("order parsed",
		zap.Int("lines", len(ord.Lines)),
		zap.String("discount_card", ord.DiscountCard),
		zap.String("balance", ord.BalanceDebitCard.StringFixed(2)),
	)

	store, err := csvfile.Load(ctx, cfg.ProductsPath, cfg.CardsPath)
	if err != nil {
		return report(lg, cfg, err)
	}
	lg.Info("reference data loaded",
		zap.Int("products", store.ProductCount()),
		zap.Int("discount_cards", store.CardCount()),
	)

	calc := check.NewCalculator(store, store)
	chk, err := calc.Calculate(ord)
	if err != nil {
		return report(lg, cfg, err)
	}

	balanceAfter := ord.BalanceDebitCard.Round(2).Sub(chk.Total.PriceWithDiscount)
	lg.Info("check calculated",
		zap.String("check_id", chk.ID),
		zap.Int("positions", len(chk.Positions)),
		zap.String("total_price", chk.Total.Price.StringFixed(2)),
		zap.String("total_discount", chk.Total.Discount.StringFixed(2)),
		zap.String("total_with_discount", chk.Total.PriceWithDiscount.StringFixed(2)),
		zap.String("balance_after", balanceAfter.StringFixed(2)),
	)

	content := render.Receipt(chk)
	if err := render.WriteFile(cfg.ResultPath, content); err != nil {
		return err
	}
	lg.Info("result written",
		zap.String("path", cfg.ResultPath),
		zap.Int("bytes", len(content)),
	)

	if cfg.Preview {
		fmt.Println(render.Table(content))
	}

	return nil
}

// report routes a fatal calculation error to the result file. The original
// error is always returned; a failure to write the report itself is
// attached on top.
func report(lg *zap.Logger, cfg *Config, err error) error {
	lg.Error("check calculation failed",
		zap.String("category", render.Label(err)),
		zap.Error(err),
	)

	content := render.ErrorReport(err)
	if werr := render.WriteFile(cfg.ResultPath, content); werr != nil {
		lg.Error("write error report", zap.Error(werr))
		return errors.Wrapf(err, "error report not written: %v", werr)
	}

	if cfg.Preview {
		fmt.Println(render.Table(content))
	}

	return err
}
