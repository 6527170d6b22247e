package handler

import (
	"errors"
	"net/http"
	"strings"

	"nbrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// AddExchangeRates godoc
// @Summary Ingest exchange rates
// @Description Fetch official daily rates from NB RB for a currency over a date range and persist them
// @Tags ExchangeRates
// @Produce json
// @Param currencyType query string true "Currency code" example(USD)
// @Param startDate query string true "Range start, ISO-8601 date-time" example(2024-01-01T00:00:00)
// @Param endDate query string true "Range end, ISO-8601 date-time" example(2024-01-31T23:59:59)
// @Success 200 {array} exchangeRateResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /exchangeRates [post]
func (h *Handler) AddExchangeRates(w http.ResponseWriter, r *http.Request) {
	h.metrics.IngestRequestsTotal.Inc()

	currencyType := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("currencyType")))
	if err := h.validator.ValidateCurrencyType(currencyType); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	startDate, err := parseDateTime(r.URL.Query().Get("startDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate format")
		return
	}
	endDate, err := parseDateTime(r.URL.Query().Get("endDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid endDate format")
		return
	}

	saved, err := h.service.AddExchangeRates(r.Context(), currencyType, startDate, endDate)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRange), errors.Is(err, domain.ErrUnknownCurrency):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrDuplicateData):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrSourceUnavailable):
			h.metrics.SourceFailuresTotal.Inc()
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "AddExchangeRates", "currency": currencyType}).Error("source failure during ingestion")
			writeError(w, http.StatusInternalServerError, domain.ErrSourceUnavailable.Error())
		default:
			msg := "failed to ingest exchange rates"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "AddExchangeRates", "currency": currencyType}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	h.metrics.RatesIngestedTotal.Add(float64(len(saved)))
	writeJSON(w, http.StatusOK, toRateResponses(saved))
}
