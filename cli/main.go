package main

import (
	"context"
	"flag"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/config"
	"go-currency-converter/convert"
	"go-currency-converter/form"
	"go-currency-converter/rates"
	"go-currency-converter/session"
	"golang.org/x/term"
	"os"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.NewLogfmtLogger(os.Stderr).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stderr)

	ratesService := rates.NewService(cfg.Rates.URL, cfg.Rates.Timeout)
	ratesService = rates.NewLoggingService(log.With(logger, "component", "rates_rest"), ratesService)

	convertService := convert.NewService()
	convertService = convert.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	s := session.New(ratesService, convertService, log.With(logger, "component", "session"),
		session.WithCurrencies(cfg.Currencies()...),
		session.WithBase(cfg.Base()),
		session.WithTarget(cfg.Target()),
	)

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	f := form.New(s, os.Stdin, os.Stdout,
		form.WithPrompts(interactive),
		form.WithColor(term.IsTerminal(int(os.Stdout.Fd()))),
	)

	if err := f.Run(context.Background()); err != nil {
		level.Error(logger).Log("msg", "form stopped", "err", err)
		os.Exit(1)
	}
}
