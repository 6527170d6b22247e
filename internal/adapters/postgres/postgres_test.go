package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"nbrates/internal/adapters/postgres"
	"nbrates/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	tcpg "github.com/testcontainers/testcontainers-go/modules/postgres"
)

const migrationsDir = "../../platform/db/migrations"

var (
	pgSetupOnce sync.Once

	pgContainer *tcpg.PostgresContainer
	pgConnStr   string
)

func TestMain(m *testing.M) {
	code := m.Run()
	if pgContainer != nil {
		_ = pgContainer.Terminate(context.Background())
	}
	os.Exit(code)
}

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pgSetupOnce.Do(func() {
		startPostgres(t)
	})

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, pgConnStr)
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })

	require.NoError(t, resetDatabase(ctx, pool))

	return pool
}

func startPostgres(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpg.Run(ctx,
		"postgres:16-alpine",
		tcpg.WithDatabase("postgres"),
		tcpg.WithUsername("postgres"),
		tcpg.WithPassword("postgres"),
	)
	require.NoError(t, err)

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	require.Eventually(t, func() bool {
		pingCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return db.PingContext(pingCtx) == nil
	}, 15*time.Second, 500*time.Millisecond)

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.UpContext(ctx, db, migrationsDir))

	pgContainer = pg
	pgConnStr = dsn
}

func resetDatabase(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `truncate table exchange_rates, weekends restart identity`); err != nil {
		return err
	}
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---------- ExchangeRateRepository tests ----------

func TestExchangeRateRepository_SaveAll_AssignsIDsAndRoundTrips(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewExchangeRateRepository(pool)
	ctx := context.Background()

	saved, err := repo.SaveAll(ctx, []domain.ExchangeRate{
		{CurrencyType: "USD", Date: day(2024, 1, 2), Rate: decimal.RequireFromString("3.1512")},
		{CurrencyType: "USD", Date: day(2024, 1, 3), Rate: decimal.RequireFromString("3.1489")},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	require.NotZero(t, saved[0].ID)
	require.NotZero(t, saved[1].ID)
	require.NotEqual(t, saved[0].ID, saved[1].ID)
	require.Equal(t, "USD", saved[0].CurrencyType)
	require.True(t, saved[0].Rate.Equal(decimal.RequireFromString("3.1512")))

	all, err := repo.FindByCurrencyType(ctx, "USD")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.True(t, all[0].Date.Before(all[1].Date))
}

func TestExchangeRateRepository_SaveAll_EmptyNoop(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewExchangeRateRepository(pool)

	saved, err := repo.SaveAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, saved)
}

func TestExchangeRateRepository_FindByCurrencyType_EmptyForUnknown(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewExchangeRateRepository(pool)

	rates, err := repo.FindByCurrencyType(context.Background(), "EUR")
	require.NoError(t, err)
	require.Empty(t, rates)
}

func TestExchangeRateRepository_FindByCurrencyTypeAndDateBetween_InclusiveBounds(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewExchangeRateRepository(pool)
	ctx := context.Background()

	_, err := repo.SaveAll(ctx, []domain.ExchangeRate{
		{CurrencyType: "EUR", Date: day(2024, 1, 1), Rate: decimal.RequireFromString("3.44")},
		{CurrencyType: "EUR", Date: day(2024, 1, 2), Rate: decimal.RequireFromString("3.45")},
		{CurrencyType: "EUR", Date: day(2024, 1, 3), Rate: decimal.RequireFromString("3.46")},
		{CurrencyType: "USD", Date: day(2024, 1, 2), Rate: decimal.RequireFromString("3.15")},
	})
	require.NoError(t, err)

	rates, err := repo.FindByCurrencyTypeAndDateBetween(ctx, "EUR", day(2024, 1, 1), day(2024, 1, 2))
	require.NoError(t, err)
	require.Len(t, rates, 2)
	for _, r := range rates {
		require.Equal(t, "EUR", r.CurrencyType)
	}
}

func TestExchangeRateRepository_ExistsByCurrencyType(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewExchangeRateRepository(pool)
	ctx := context.Background()

	exists, err := repo.ExistsByCurrencyType(ctx, "USD")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = repo.SaveAll(ctx, []domain.ExchangeRate{
		{CurrencyType: "USD", Date: day(2024, 1, 2), Rate: decimal.RequireFromString("3.15")},
	})
	require.NoError(t, err)

	exists, err = repo.ExistsByCurrencyType(ctx, "USD")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestExchangeRateRepository_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewExchangeRateRepository(pool)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.FindByCurrencyType(ctx, "USD")
	require.Error(t, err)
}

// ---------- WeekendRepository tests ----------

func TestWeekendRepository_UpsertDays_SkipsExisting(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewWeekendRepository(pool)
	ctx := context.Background()

	inserted, err := repo.UpsertDays(ctx, []domain.Weekend{
		{CalendarDate: day(2024, 1, 6), IsDayOff: true},
		{CalendarDate: day(2024, 1, 7), IsDayOff: true},
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, inserted)

	// Overlapping batch: only the new date lands.
	inserted, err = repo.UpsertDays(ctx, []domain.Weekend{
		{CalendarDate: day(2024, 1, 7), IsDayOff: true},
		{CalendarDate: day(2024, 1, 13), IsDayOff: true},
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, inserted)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestWeekendRepository_FindByDate(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewWeekendRepository(pool)
	ctx := context.Background()

	_, err := repo.UpsertDays(ctx, []domain.Weekend{{CalendarDate: day(2024, 1, 6), IsDayOff: true}})
	require.NoError(t, err)

	w, err := repo.FindByDate(ctx, time.Date(2024, 1, 6, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, w)
	require.True(t, w.IsDayOff)

	missing, err := repo.FindByDate(ctx, day(2024, 1, 8))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestWeekendRepository_FindAllByDateBetween(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewWeekendRepository(pool)
	ctx := context.Background()

	_, err := repo.UpsertDays(ctx, []domain.Weekend{
		{CalendarDate: day(2023, 12, 31), IsDayOff: true},
		{CalendarDate: day(2024, 1, 6), IsDayOff: true},
		{CalendarDate: day(2024, 1, 7), IsDayOff: true},
		{CalendarDate: day(2024, 2, 3), IsDayOff: true},
	})
	require.NoError(t, err)

	weekends, err := repo.FindAllByDateBetween(ctx, day(2024, 1, 1), day(2024, 1, 31))
	require.NoError(t, err)
	require.Len(t, weekends, 2)
	require.True(t, weekends[0].CalendarDate.Before(weekends[1].CalendarDate))
}
