package weekend

import (
	"context"
	"fmt"
	"time"

	"nbrates/internal/adapters"
	"nbrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// PopulateWeekends upserts day-off rows for every Saturday and Sunday from
// today (UTC) through the horizon. Existing rows, including manually added
// holidays, are left untouched, so the job is safe to rerun.
func PopulateWeekends(ctx context.Context, execID string, repo adapters.WeekendRepository, horizonDays int) error {
	days := upcomingWeekendDays(time.Now().UTC(), horizonDays)
	if len(days) == 0 {
		logrus.Infof("No weekend days within horizon; execID: %s", execID)
		return nil
	}

	inserted, err := repo.UpsertDays(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to populate weekend calendar: %w", err)
	}

	logrus.Infof("Weekend calendar populated: %d of %d days were new; execID: %s", inserted, len(days), execID)
	return nil
}

func upcomingWeekendDays(from time.Time, horizonDays int) []domain.Weekend {
	days := make([]domain.Weekend, 0, horizonDays/3+2)
	start := domain.Day(from)
	for i := 0; i <= horizonDays; i++ {
		d := start.AddDate(0, 0, i)
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			days = append(days, domain.Weekend{CalendarDate: d, IsDayOff: true})
		}
	}
	return days
}
