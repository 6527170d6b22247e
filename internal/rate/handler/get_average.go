package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nbrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// GetAverageExchangeRate godoc
// @Summary Monthly average exchange rate
// @Description Geometric mean of a currency's daily rates over one month, day-off dates excluded, rounded to 2 decimals
// @Tags ExchangeRates
// @Produce json
// @Param currencyType query string true "Currency code" example(USD)
// @Param month query int true "Month, 1-12" example(1)
// @Param year query int true "Year" example(2024)
// @Success 200 {number} number
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /exchangeRates/average [get]
func (h *Handler) GetAverageExchangeRate(w http.ResponseWriter, r *http.Request) {
	h.metrics.AverageRequestsTotal.Inc()

	currencyType := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("currencyType")))
	if err := h.validator.ValidateCurrencyType(currencyType); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month format")
		return
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year format")
		return
	}
	if err = h.validator.ValidateMonthYear(month, year); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	avg, err := h.service.CalculateAverageRate(r.Context(), currencyType, time.Month(month), year)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownCurrency):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNoRatesForPeriod):
			writeError(w, http.StatusInternalServerError, err.Error())
		default:
			msg := "failed to calculate average exchange rate"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetAverageExchangeRate", "currency": currencyType, "month": month, "year": year}).Error(msg)
			writeError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(avg.StringFixed(2)))
}
