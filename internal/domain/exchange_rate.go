package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one official daily rate of a currency, as ingested from
// the NB RB API. Records are append-only: never updated after insertion.
type ExchangeRate struct {
	ID           int64
	CurrencyType string
	Date         time.Time
	Rate         decimal.Decimal
}

// RatePoint is a single (date, rate) entry of a series returned by the
// external source, before it is bound to a currency type and persisted.
type RatePoint struct {
	Date time.Time
	Rate decimal.Decimal
}

// Day truncates t to its UTC calendar day. Rate timestamps and day-off
// calendar dates are always compared at this granularity.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
