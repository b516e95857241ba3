package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go-currency-converter"
	"os"
	"time"
)

// Config for both the terminal form and the HTTP server
type Config struct {
	Rates Rates `yaml:"rates"`
	Form  Form  `yaml:"form"`
	HTTP  HTTP  `yaml:"http"`
	Log   Log   `yaml:"log"`
}

// Rates the exchange rate endpoint
type Rates struct {
	// URL prefix, the base currency code is appended to it
	URL     string        `yaml:"url" env:"RATES_URL" env-default:"https://api.exchangerate-api.com/v4/latest/"`
	Timeout time.Duration `yaml:"timeout" env:"RATES_TIMEOUT" env-default:"5s"`
}

// Form the currencies offered by the terminal form
type Form struct {
	Currencies []string `yaml:"currencies" env:"CURRENCIES" env-separator:"," env-default:"BRL,USD,EUR,JPY,GBP"`
	Base       string   `yaml:"base" env:"BASE_CURRENCY" env-default:"BRL"`
	Target     string   `yaml:"target" env:"TARGET_CURRENCY" env-default:"USD"`
}

// HTTP the API server
type HTTP struct {
	Addr string `yaml:"addr" env:"HTTP_ADDR" env-default:":8080"`
}

// Log output settings
type Log struct {
	// Level one of debug, info, warn, error
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	// Format logfmt or json
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"logfmt"`
}

// Load reads the configuration from the yaml file at path, or from the environment
// alone when path is empty. A .env file in the working directory is applied first if present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config %v: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the currency settings
func (c *Config) Validate() error {
	if len(c.Form.Currencies) == 0 {
		return fmt.Errorf("config: no currencies")
	}
	for _, s := range append([]string{c.Form.Base, c.Form.Target}, c.Form.Currencies...) {
		if _, err := converter.ParseCurrency(s); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	currencies := c.Currencies()
	for _, code := range []converter.Currency{c.Base(), c.Target()} {
		if !contains(currencies, code) {
			return fmt.Errorf("config: %v is not one of the form currencies", code)
		}
	}
	if c.Rates.Timeout <= 0 {
		return fmt.Errorf("config: rates timeout must be positive")
	}
	switch c.Log.Format {
	case "logfmt", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// Currencies the form currencies as parsed codes
func (c *Config) Currencies() []converter.Currency {
	currencies := make([]converter.Currency, 0, len(c.Form.Currencies))
	for _, s := range c.Form.Currencies {
		code, err := converter.ParseCurrency(s)
		if err != nil {
			continue
		}
		currencies = append(currencies, code)
	}
	return currencies
}

// Base the initial base currency
func (c *Config) Base() converter.Currency {
	code, _ := converter.ParseCurrency(c.Form.Base)
	return code
}

// Target the initial target currency
func (c *Config) Target() converter.Currency {
	code, _ := converter.ParseCurrency(c.Form.Target)
	return code
}

func contains(currencies []converter.Currency, c converter.Currency) bool {
	for _, k := range currencies {
		if k == c {
			return true
		}
	}
	return false
}
