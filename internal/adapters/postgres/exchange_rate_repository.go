package postgres

import (
	"context"
	"fmt"
	"time"

	"nbrates/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ExchangeRateRepository struct {
	pool *pgxpool.Pool
}

func NewExchangeRateRepository(pool *pgxpool.Pool) *ExchangeRateRepository {
	return &ExchangeRateRepository{pool: pool}
}

func (r *ExchangeRateRepository) FindByCurrencyType(ctx context.Context, currencyType string) ([]domain.ExchangeRate, error) {
	const q = `
        select id, currency_type, rate_date, rate::text
        from exchange_rates
        where currency_type = $1
        order by rate_date;
    `

	rows, err := r.pool.Query(ctx, q, currencyType)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates for currency %q: %w", currencyType, err)
	}
	defer rows.Close()

	return scanRates(rows, currencyType)
}

func (r *ExchangeRateRepository) FindByCurrencyTypeAndDateBetween(ctx context.Context, currencyType string, start, end time.Time) ([]domain.ExchangeRate, error) {
	const q = `
        select id, currency_type, rate_date, rate::text
        from exchange_rates
        where currency_type = $1 and rate_date between $2 and $3
        order by rate_date;
    `

	rows, err := r.pool.Query(ctx, q, currencyType, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query rates for currency %q in range: %w", currencyType, err)
	}
	defer rows.Close()

	return scanRates(rows, currencyType)
}

func (r *ExchangeRateRepository) ExistsByCurrencyType(ctx context.Context, currencyType string) (bool, error) {
	const q = `select exists(select 1 from exchange_rates where currency_type = $1);`

	var exists bool
	if err := r.pool.QueryRow(ctx, q, currencyType).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence for currency %q: %w", currencyType, err)
	}
	return exists, nil
}

// SaveAll inserts the whole batch within one transaction, so either every
// record is committed or none is.
func (r *ExchangeRateRepository) SaveAll(ctx context.Context, rates []domain.ExchangeRate) ([]domain.ExchangeRate, error) {
	if len(rates) == 0 {
		return []domain.ExchangeRate{}, nil
	}

	currencies := make([]string, len(rates))
	dates := make([]time.Time, len(rates))
	values := make([]string, len(rates))
	for i, rate := range rates {
		currencies[i] = rate.CurrencyType
		dates[i] = rate.Date
		values[i] = rate.Rate.String()
	}

	const q = `
        insert into exchange_rates (currency_type, rate_date, rate)
        select * from unnest($1::text[], $2::timestamptz[], $3::numeric[])
        returning id, currency_type, rate_date, rate::text;
    `

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, q, currencies, dates, values)
	if err != nil {
		return nil, fmt.Errorf("failed to insert %d rates: %w", len(rates), err)
	}
	saved, err := scanRates(rows, "")
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return saved, nil
}

func scanRates(rows pgx.Rows, currencyType string) ([]domain.ExchangeRate, error) {
	rates := make([]domain.ExchangeRate, 0, 32)
	for rows.Next() {
		var (
			rate    domain.ExchangeRate
			rateStr string
		)
		if err := rows.Scan(&rate.ID, &rate.CurrencyType, &rate.Date, &rateStr); err != nil {
			return nil, fmt.Errorf("failed to scan rate for currency %q: %w", currencyType, err)
		}
		value, err := decimal.NewFromString(rateStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate value %q: %w", rateStr, err)
		}
		rate.Rate = value
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rates: %w", err)
	}
	return rates, nil
}
