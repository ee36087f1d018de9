package activity

// Activity is the canonical, unit-converted record shared by the importer and
// the dashboard API. It matches the columns of the activities table and the
// shape of the local cache artifact: distances in meters, durations in
// seconds, speed in km/h, date as a UTC calendar day.
//
// Every field except Id and Date is optional. A nil pointer means the vendor
// export did not carry a usable value; converted fields are either a finite
// number or nil, never NaN.
type Activity struct {
	Id             int64    `json:"id"`
	Date           string   `json:"date"` // YYYY-MM-DD, always present
	Name           *string  `json:"name"`
	ActivityType   *string  `json:"activity_type"`
	LocationName   *string  `json:"location_name"`
	Description    *string  `json:"description"`
	DurationSec    *int64   `json:"duration_sec"`
	DistanceM      *float64 `json:"distance_m"`
	ElevationGainM *float64 `json:"elevation_gain_m"`
	AvgSpeedKmh    *float64 `json:"avg_speed_kmh"`
	AvgHR          *int64   `json:"avg_hr"`
	MaxHR          *int64   `json:"max_hr"`
	Calories       *int64   `json:"calories"`
	AvgPower       *int64   `json:"avg_power"`
	Tss            *float64 `json:"tss"`
	AvgTemperature *float64 `json:"avg_temperature"`
	MinTemperature *float64 `json:"min_temperature"`
	MaxTemperature *float64 `json:"max_temperature"`
	StartLat       *float64 `json:"start_lat"`
	StartLon       *float64 `json:"start_lon"`
}
