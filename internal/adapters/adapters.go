package adapters

import (
	"context"
	"time"

	"nbrates/internal/domain"
)

// RateSource is the external data provider of official daily rates.
type RateSource interface {
	// LookupCurrencyID resolves a currency code ("USD") to the numeric
	// identifier used by the source. Returns domain.ErrUnknownCurrency when
	// the source reports the code as not found, and an error wrapping
	// domain.ErrSourceUnavailable on any other failure.
	LookupCurrencyID(ctx context.Context, code string) (int, error)
	// FetchDailyRates returns one point per day the source has a rate for
	// within [start, end] inclusive.
	FetchDailyRates(ctx context.Context, currencyID int, start, end time.Time) ([]domain.RatePoint, error)
}

type ExchangeRateRepository interface {
	FindByCurrencyType(ctx context.Context, currencyType string) ([]domain.ExchangeRate, error)
	FindByCurrencyTypeAndDateBetween(ctx context.Context, currencyType string, start, end time.Time) ([]domain.ExchangeRate, error)
	ExistsByCurrencyType(ctx context.Context, currencyType string) (bool, error)
	// SaveAll inserts all records in a single transaction and returns them
	// with assigned ids.
	SaveAll(ctx context.Context, rates []domain.ExchangeRate) ([]domain.ExchangeRate, error)
}

type WeekendRepository interface {
	FindAll(ctx context.Context) ([]domain.Weekend, error)
	// FindByDate returns nil without error when no row exists for the date.
	FindByDate(ctx context.Context, date time.Time) (*domain.Weekend, error)
	FindAllByDateBetween(ctx context.Context, start, end time.Time) ([]domain.Weekend, error)
	// UpsertDays inserts day-off rows, skipping dates that already exist.
	UpsertDays(ctx context.Context, days []domain.Weekend) (int64, error)
}

// CurrencyIDCache caches source currency-id lookups, which never change.
type CurrencyIDCache interface {
	Get(code string) (int, bool)
	Set(code string, currencyID int)
}
