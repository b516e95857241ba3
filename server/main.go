package main

import (
	"flag"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go-currency-converter/config"
	"go-currency-converter/convert"
	"go-currency-converter/exchange"
	"go-currency-converter/http"
	"go-currency-converter/metrics"
	"go-currency-converter/rates"
	"os"

	nhttp "net/http"
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

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	ratesService := rates.NewService(cfg.Rates.URL, cfg.Rates.Timeout)
	ratesService = rates.NewLoggingService(log.With(logger, "component", "rates_rest"), ratesService)
	ratesService = rates.NewInstrumentingService(m, ratesService)

	convertService := convert.NewService()
	convertService = convert.NewInstrumentingService(m, convertService)

	exchangeService := exchange.NewService(ratesService, convertService)
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	handler := http.NewServer(exchangeService, ratesService, registry, log.With(logger, "component", "http"))

	level.Info(logger).Log("msg", "listening", "addr", cfg.HTTP.Addr)
	err = nhttp.ListenAndServe(cfg.HTTP.Addr, handler)
	level.Error(logger).Log("msg", "server stopped", "err", err)
	os.Exit(1)
}
