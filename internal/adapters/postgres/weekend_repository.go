package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nbrates/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WeekendRepository struct {
	pool *pgxpool.Pool
}

func NewWeekendRepository(pool *pgxpool.Pool) *WeekendRepository {
	return &WeekendRepository{pool: pool}
}

func (r *WeekendRepository) FindAll(ctx context.Context) ([]domain.Weekend, error) {
	const q = `
        select weekend_id, calendar_date, is_day_off
        from weekends
        order by calendar_date;
    `

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekends: %w", err)
	}
	defer rows.Close()

	return scanWeekends(rows)
}

func (r *WeekendRepository) FindByDate(ctx context.Context, date time.Time) (*domain.Weekend, error) {
	const q = `
        select weekend_id, calendar_date, is_day_off
        from weekends
        where calendar_date = $1::date;
    `

	var w domain.Weekend
	if err := r.pool.QueryRow(ctx, q, domain.Day(date)).Scan(&w.ID, &w.CalendarDate, &w.IsDayOff); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select weekend for %s: %w", date.Format(time.DateOnly), err)
	}
	return &w, nil
}

func (r *WeekendRepository) FindAllByDateBetween(ctx context.Context, start, end time.Time) ([]domain.Weekend, error) {
	const q = `
        select weekend_id, calendar_date, is_day_off
        from weekends
        where calendar_date between $1::date and $2::date
        order by calendar_date;
    `

	rows, err := r.pool.Query(ctx, q, domain.Day(start), domain.Day(end))
	if err != nil {
		return nil, fmt.Errorf("failed to query weekends in range: %w", err)
	}
	defer rows.Close()

	return scanWeekends(rows)
}

// UpsertDays inserts calendar rows, leaving already present dates untouched.
// Returns the number of newly inserted rows.
func (r *WeekendRepository) UpsertDays(ctx context.Context, days []domain.Weekend) (int64, error) {
	if len(days) == 0 {
		return 0, nil
	}

	dates := make([]time.Time, len(days))
	flags := make([]bool, len(days))
	for i, d := range days {
		dates[i] = domain.Day(d.CalendarDate)
		flags[i] = d.IsDayOff
	}

	const q = `
        insert into weekends (calendar_date, is_day_off)
        select * from unnest($1::date[], $2::boolean[])
        on conflict (calendar_date) do nothing;
    `

	tag, err := r.pool.Exec(ctx, q, dates, flags)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert %d weekend days: %w", len(days), err)
	}
	return tag.RowsAffected(), nil
}

func scanWeekends(rows pgx.Rows) ([]domain.Weekend, error) {
	weekends := make([]domain.Weekend, 0, 32)
	for rows.Next() {
		var w domain.Weekend
		if err := rows.Scan(&w.ID, &w.CalendarDate, &w.IsDayOff); err != nil {
			return nil, fmt.Errorf("failed to scan weekend: %w", err)
		}
		weekends = append(weekends, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weekends: %w", err)
	}
	return weekends, nil
}
