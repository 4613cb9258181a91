package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (CHECK_ prefix) or YAML config files. Command-line
// arguments are reserved for the order itself, so flag binding is disabled.
type Config struct {
	ProductsPath string `default:"data/products.csv" usage:"Path to the products reference CSV (plain or .gz)"`
	CardsPath    string `default:"data/discountCards.csv" usage:"Path to the discount cards reference CSV (plain or .gz)"`
	ResultPath   string `default:"result.csv" usage:"Path the receipt or error report is written to"`
	Preview      bool   `default:"true" usage:"Print an aligned preview of the result to the console"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CHECK",
		SkipFlags: true,
		Files:     []string{"config.yaml", "/etc/cashier-check/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	return &cfg, nil
}
