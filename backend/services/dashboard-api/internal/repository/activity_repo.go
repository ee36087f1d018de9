package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"traillog/backend/libs/activity"
)

// ErrActivityNotFound indicates a missing activity id.
var ErrActivityNotFound = errors.New("activity not found")

const activitySelect = `
	SELECT id, date::text, name, activity_type, location_name, description,
	       duration_sec, distance_m, elevation_gain_m, avg_speed_kmh,
	       avg_hr, max_hr, calories, avg_power, tss,
	       avg_temperature, min_temperature, max_temperature,
	       start_lat, start_lon
	FROM activities
`

// ActivityListParams filters and orders the activity list query. SortColumn
// must already be resolved against the service's allow-list; the repository
// interpolates it into ORDER BY and never receives user input directly.
type ActivityListParams struct {
	Search     string
	From       string // YYYY-MM-DD, inclusive
	To         string // YYYY-MM-DD, inclusive
	SortColumn string
	Descending bool
	Limit      int
	Offset     int
}

// ActivityRepository reads the activities table.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository returns repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// List returns activities matching the filter, ordered per params.
func (r *ActivityRepository) List(ctx context.Context, params ActivityListParams) ([]activity.Activity, error) {
	var conds []string
	var args []interface{}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(name ILIKE $%d OR location_name ILIKE $%d OR activity_type ILIKE $%d OR description ILIKE $%d)",
			n, n, n, n))
	}
	if params.From != "" {
		args = append(args, params.From)
		conds = append(conds, fmt.Sprintf("date >= $%d::date", len(args)))
	}
	if params.To != "" {
		args = append(args, params.To)
		conds = append(conds, fmt.Sprintf("date <= $%d::date", len(args)))
	}

	query := activitySelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	direction := "ASC"
	if params.Descending {
		direction = "DESC"
	}
	// Secondary id ordering keeps pagination stable across equal values.
	query += fmt.Sprintf(" ORDER BY %s %s, id DESC", params.SortColumn, direction)

	args = append(args, params.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, params.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return activities, nil
}

// GetByID returns one activity or ErrActivityNotFound.
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*activity.Activity, error) {
	row := r.db.QueryRowContext(ctx, activitySelect+" WHERE id = $1", id)
	a, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return a, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanActivity(row rowScanner) (*activity.Activity, error) {
	var a activity.Activity
	if err := row.Scan(
		&a.Id,
		&a.Date,
		&a.Name,
		&a.ActivityType,
		&a.LocationName,
		&a.Description,
		&a.DurationSec,
		&a.DistanceM,
		&a.ElevationGainM,
		&a.AvgSpeedKmh,
		&a.AvgHR,
		&a.MaxHR,
		&a.Calories,
		&a.AvgPower,
		&a.Tss,
		&a.AvgTemperature,
		&a.MinTemperature,
		&a.MaxTemperature,
		&a.StartLat,
		&a.StartLon,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
