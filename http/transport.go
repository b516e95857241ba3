package http

import (
	"encoding/json"
	"errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go-currency-converter"
	"go-currency-converter/exchange"
	"go-currency-converter/rates"
	"io"
	"net/http"
	"strings"
)

// maxRequestBytes bounds the body of a conversion request
const maxRequestBytes = 4 << 10

// Server dependencies for HTTP Server functions
type Server struct {
	Service  exchange.Service
	Rates    rates.Service
	Gatherer prometheus.Gatherer
	Logger   log.Logger

	router   http.ServeMux
	validate *validator.Validate
}

// NewServer constructs a Server with its routes registered.
// A nil gatherer leaves /metrics unrouted.
func NewServer(s exchange.Service, r rates.Service, g prometheus.Gatherer, logger log.Logger) *Server {
	server := &Server{
		Service:  s,
		Rates:    r,
		Gatherer: g,
		Logger:   logger,
		router:   http.ServeMux{},
		validate: validator.New(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/convert", s.convert())
	s.router.Handle("/api/rates", s.rates())
	if s.Gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency converter.Currency `json:"fromCurrency" validate:"required,len=3,alpha"`
		ToCurrency   converter.Currency `json:"toCurrency" validate:"required,len=3,alpha"`
		Amount       *converter.Amount  `json:"amount" validate:"required"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange converter.Rate   `json:"exchange"`
		Amount   converter.Amount `json:"amount"`
		Original converter.Amount `json:"original"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			s.fail(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		bytes, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxRequestBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				s.fail(rw, http.StatusRequestEntityTooLarge, "request too large")
				return
			}
			s.fail(rw, http.StatusBadRequest, "invalid request")
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			s.fail(rw, http.StatusBadRequest, "invalid json")
			return
		}
		if err := s.validate.Struct(request); err != nil {
			s.fail(rw, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}

		from := converter.Currency(strings.ToUpper(string(request.FromCurrency)))
		to := converter.Currency(strings.ToUpper(string(request.ToCurrency)))

		result, err := s.Service.Convert(r.Context(), *request.Amount, from, to)
		if err != nil {
			s.serviceError(rw, err)
			return
		}

		s.encode(rw, response{
			Exchange: result.Rate,
			Amount:   result.Amount,
			Original: *request.Amount,
		})
	}
}

// rates produces HTTP handler listing the rate table of a base currency
func (s *Server) rates() http.HandlerFunc {

	type response struct {
		Base  converter.Currency `json:"base"`
		Rates converter.Rates    `json:"rates"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodGet {
			s.fail(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		base, err := converter.ParseCurrency(r.URL.Query().Get("base"))
		if err != nil {
			s.fail(rw, http.StatusBadRequest, "invalid base currency")
			return
		}

		table, err := s.Rates.ExchangeRates(r.Context(), base)
		if err != nil {
			s.serviceError(rw, err)
			return
		}

		s.encode(rw, response{Base: base, Rates: table})
	}
}

// serviceError maps a service error to a status code
func (s *Server) serviceError(rw http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, converter.ErrInvalidAmount), errors.Is(err, converter.ErrInvalidRate):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, converter.ErrMissingRate):
		status = http.StatusNotFound
	case errors.Is(err, converter.ErrMalformedResponse):
		status = http.StatusBadGateway
	case errors.Is(err, converter.ErrNetworkUnavailable):
		status = http.StatusServiceUnavailable
	}
	level.Info(s.logger()).Log("msg", "request failed", "status", status, "err", err)
	s.fail(rw, status, err.Error())
}

func (s *Server) fail(rw http.ResponseWriter, status int, msg string) {
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(map[string]string{"error": msg})
}

func (s *Server) encode(rw http.ResponseWriter, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		s.fail(rw, http.StatusInternalServerError, "failed json encoding")
		return
	}
	_, _ = rw.Write(append(bytes, '\n'))
}

func (s *Server) logger() log.Logger {
	if s.Logger == nil {
		return log.NewNopLogger()
	}
	return s.Logger
}
