package rate

import (
	"context"
	"fmt"
	"math"
	"time"

	"nbrates/internal/adapters"
	"nbrates/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Service struct {
	rates    adapters.ExchangeRateRepository
	weekends adapters.WeekendRepository
	source   adapters.RateSource
	idCache  adapters.CurrencyIDCache
}

func NewService(rates adapters.ExchangeRateRepository, weekends adapters.WeekendRepository, source adapters.RateSource, idCache adapters.CurrencyIDCache) *Service {
	return &Service{rates: rates, weekends: weekends, source: source, idCache: idCache}
}

// AddExchangeRates ingests the official daily rates for a currency over
// [start, end]: validate the range, refuse overlap with already ingested
// data, fetch the series from NB RB and persist it as one batch.
//
// The duplicate pre-check and the insert are not serialized against
// concurrent ingestions; two overlapping requests can both pass the check.
func (s *Service) AddExchangeRates(ctx context.Context, currencyType string, start, end time.Time) ([]domain.ExchangeRate, error) {
	if start.After(end) {
		return nil, domain.ErrInvalidRange
	}

	existing, err := s.rates.FindByCurrencyTypeAndDateBetween(ctx, currencyType, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing rates: %w", err)
	}
	if len(existing) > 0 {
		return nil, domain.ErrDuplicateData
	}

	currencyID, err := s.resolveCurrencyID(ctx, currencyType)
	if err != nil {
		return nil, err
	}

	points, err := s.source.FetchDailyRates(ctx, currencyID, start, end)
	if err != nil {
		return nil, err
	}

	rates := make([]domain.ExchangeRate, 0, len(points))
	for _, p := range points {
		rates = append(rates, domain.ExchangeRate{
			CurrencyType: currencyType,
			Date:         p.Date,
			Rate:         p.Rate,
		})
	}

	saved, err := s.rates.SaveAll(ctx, rates)
	if err != nil {
		return nil, fmt.Errorf("failed to save %d rates: %w", len(rates), err)
	}
	logrus.WithFields(logrus.Fields{"currency": currencyType, "count": len(saved)}).Info("Exchange rates ingested")
	return saved, nil
}

// GetAllExchangeRates returns every stored rate for the currency, ascending
// by date. An unknown currency is one with no stored record at all.
func (s *Service) GetAllExchangeRates(ctx context.Context, currencyType string) ([]domain.ExchangeRate, error) {
	if err := s.requireKnownCurrency(ctx, currencyType); err != nil {
		return nil, err
	}
	return s.rates.FindByCurrencyType(ctx, currencyType)
}

// CalculateAverageRate computes the geometric mean of the currency's rates
// over one calendar month, skipping days flagged as day-off, rounded to two
// decimals half-up.
//
// The product is accumulated exactly, but the nth root goes through float64:
// that float step is part of the observable contract and must not be
// replaced with exact-decimal root extraction.
func (s *Service) CalculateAverageRate(ctx context.Context, currencyType string, month time.Month, year int) (decimal.Decimal, error) {
	if err := s.requireKnownCurrency(ctx, currencyType); err != nil {
		return decimal.Zero, err
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	rangeEnd := time.Date(year, month, monthEnd.Day(), 23, 59, 59, 0, time.UTC)

	rates, err := s.rates.FindByCurrencyTypeAndDateBetween(ctx, currencyType, monthStart, rangeEnd)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load rates for %d-%02d: %w", year, month, err)
	}

	weekends, err := s.weekends.FindAllByDateBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load weekends for %d-%02d: %w", year, month, err)
	}

	dayOff := make(map[time.Time]struct{}, len(weekends))
	for _, w := range weekends {
		if w.IsDayOff {
			dayOff[domain.Day(w.CalendarDate)] = struct{}{}
		}
	}

	product := decimal.NewFromInt(1)
	count := 0
	for _, r := range rates {
		if _, off := dayOff[domain.Day(r.Date)]; off {
			continue
		}
		product = product.Mul(r.Rate)
		count++
	}

	if count == 0 {
		return decimal.Zero, domain.ErrNoRatesForPeriod
	}

	mean := math.Pow(product.InexactFloat64(), 1.0/float64(count))
	return decimal.NewFromFloat(mean).Round(2), nil
}

func (s *Service) requireKnownCurrency(ctx context.Context, currencyType string) error {
	exists, err := s.rates.ExistsByCurrencyType(ctx, currencyType)
	if err != nil {
		return fmt.Errorf("failed to check currency existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, currencyType)
	}
	return nil
}

// resolveCurrencyID answers from the cache when possible; the bank never
// changes an id once assigned, so only successful lookups are cached.
func (s *Service) resolveCurrencyID(ctx context.Context, currencyType string) (int, error) {
	if id, ok := s.idCache.Get(currencyType); ok {
		return id, nil
	}
	id, err := s.source.LookupCurrencyID(ctx, currencyType)
	if err != nil {
		return 0, err
	}
	s.idCache.Set(currencyType, id)
	return id, nil
}
