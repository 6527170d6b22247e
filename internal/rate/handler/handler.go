package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"nbrates/internal/domain"
	"nbrates/internal/metrics"

	"github.com/shopspring/decimal"
)

type RateService interface {
	AddExchangeRates(ctx context.Context, currencyType string, start, end time.Time) ([]domain.ExchangeRate, error)
	GetAllExchangeRates(ctx context.Context, currencyType string) ([]domain.ExchangeRate, error)
	CalculateAverageRate(ctx context.Context, currencyType string, month time.Month, year int) (decimal.Decimal, error)
}

type CurrencyValidator interface {
	ValidateCurrencyType(currencyType string) error
	ValidateMonthYear(month, year int) error
}

type Handler struct {
	validator CurrencyValidator
	service   RateService
	metrics   *metrics.Metrics
}

func NewRateHandler(validator CurrencyValidator, service RateService, m *metrics.Metrics) *Handler {
	return &Handler{validator: validator, service: service, metrics: m}
}

type exchangeRateResponse struct {
	ID           int64       `json:"id"`
	CurrencyType string      `json:"currencyType"`
	Date         time.Time   `json:"date"`
	Rate         json.Number `json:"rate"`
}

func toRateResponses(rates []domain.ExchangeRate) []exchangeRateResponse {
	res := make([]exchangeRateResponse, 0, len(rates))
	for _, r := range rates {
		res = append(res, exchangeRateResponse{
			ID:           r.ID,
			CurrencyType: r.CurrencyType,
			Date:         r.Date,
			Rate:         json.Number(r.Rate.String()),
		})
	}
	return res
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var statusNames = map[int]string{
	http.StatusBadRequest:          "BAD_REQUEST",
	http.StatusNotFound:            "NOT_FOUND",
	http.StatusConflict:            "CONFLICT",
	http.StatusInternalServerError: "INTERNAL_SERVER_ERROR",
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	name, ok := statusNames[statusCode]
	if !ok {
		name = http.StatusText(statusCode)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Status:  name,
		Message: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// dateTimeLayout is accepted alongside RFC3339 for the startDate/endDate
// query params; zoneless values are interpreted as UTC.
const dateTimeLayout = "2006-01-02T15:04:05"

func parseDateTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation(dateTimeLayout, raw, time.UTC)
}
