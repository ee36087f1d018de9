package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"traillog/backend/libs/activity"
)

// activityColumns lists the activities table columns in insert order.
var activityColumns = []string{
	"id", "date", "name", "activity_type", "location_name", "description",
	"duration_sec", "distance_m", "elevation_gain_m", "avg_speed_kmh",
	"avg_hr", "max_hr", "calories", "avg_power", "tss",
	"avg_temperature", "min_temperature", "max_temperature",
	"start_lat", "start_lon",
}

// ActivityRepository bulk-writes canonical activities. Writes require the
// elevated service DSN; the public dashboard role cannot touch this table.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository returns repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// UpsertBatch inserts one batch in a single statement. A row whose id already
// exists is fully overwritten with the new values; there is no per-field merge.
func (r *ActivityRepository) UpsertBatch(ctx context.Context, batch []activity.Activity) error {
	if len(batch) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(batch))
	args := make([]interface{}, 0, len(batch)*len(activityColumns))
	for i, a := range batch {
		row := make([]string, len(activityColumns))
		for j := range activityColumns {
			row[j] = fmt.Sprintf("$%d", i*len(activityColumns)+j+1)
		}
		placeholders = append(placeholders, "("+strings.Join(row, ", ")+")")
		args = append(args,
			a.Id, a.Date, a.Name, a.ActivityType, a.LocationName, a.Description,
			a.DurationSec, a.DistanceM, a.ElevationGainM, a.AvgSpeedKmh,
			a.AvgHR, a.MaxHR, a.Calories, a.AvgPower, a.Tss,
			a.AvgTemperature, a.MinTemperature, a.MaxTemperature,
			a.StartLat, a.StartLon,
		)
	}

	updates := make([]string, 0, len(activityColumns)-1)
	for _, col := range activityColumns[1:] {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf(`
		INSERT INTO activities (%s)
		VALUES %s
		ON CONFLICT (id) DO UPDATE SET %s
	`,
		strings.Join(activityColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert activities: %w", err)
	}
	return nil
}
