package domain

import "errors"

var (
	ErrInvalidRange      = errors.New("start date cannot be after end date")
	ErrUnknownCurrency   = errors.New("currency type not found")
	ErrDuplicateData     = errors.New("exchange rates already exist for the selected period")
	ErrSourceUnavailable = errors.New("failed to get data from NB RB API")
	ErrNoRatesForPeriod  = errors.New("no exchange rates found for the specified period")
)
