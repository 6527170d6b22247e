package rate

import (
	"errors"
	"time"
)

var (
	ErrCurrencyRequired = errors.New("currency type is required")
	ErrCurrencyFormat   = errors.New("currency type must be a three-letter code")
	ErrMonthOutOfRange  = errors.New("month must be between 1 and 12")
	ErrYearOutOfRange   = errors.New("year must be between 1 and 9999")
)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCurrencyType(currencyType string) error {
	if currencyType == "" {
		return ErrCurrencyRequired
	}
	if len(currencyType) != 3 {
		return ErrCurrencyFormat
	}
	for _, c := range currencyType {
		if c < 'A' || c > 'Z' {
			return ErrCurrencyFormat
		}
	}
	return nil
}

func (v *Validator) ValidateMonthYear(month, year int) error {
	if month < int(time.January) || month > int(time.December) {
		return ErrMonthOutOfRange
	}
	if year < 1 || year > 9999 {
		return ErrYearOutOfRange
	}
	return nil
}
