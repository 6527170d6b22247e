package handler

import (
	"errors"
	"net/http"
	"strings"

	"nbrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// GetAllExchangeRates godoc
// @Summary List stored exchange rates
// @Description Return every stored rate for a currency, ascending by date
// @Tags ExchangeRates
// @Produce json
// @Param currencyType query string true "Currency code" example(USD)
// @Success 200 {array} exchangeRateResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /exchangeRates [get]
func (h *Handler) GetAllExchangeRates(w http.ResponseWriter, r *http.Request) {
	currencyType := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("currencyType")))
	if err := h.validator.ValidateCurrencyType(currencyType); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rates, err := h.service.GetAllExchangeRates(r.Context(), currencyType)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCurrency) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := "failed to list exchange rates"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetAllExchangeRates", "currency": currencyType}).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
		return
	}

	writeJSON(w, http.StatusOK, toRateResponses(rates))
}
