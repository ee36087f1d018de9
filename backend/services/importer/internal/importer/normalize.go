package importer

import (
	"traillog/backend/libs/activity"
	"traillog/backend/services/importer/internal/units"
)

// normalize maps one raw vendor record to the canonical activity shape.
// A record without a usable begin timestamp has no calendar date and is
// unrepresentable in the canonical set; normalize returns nil for it and
// the caller counts and logs the skip. Everything else degrades per field:
// a missing or invalid source value becomes a nil canonical field.
func normalize(raw RawActivityRecord) *activity.Activity {
	date := units.EpochMsToDate(raw.BeginTimestamp)
	if date == "" {
		return nil
	}

	return &activity.Activity{
		Id:             raw.ActivityID,
		Date:           date,
		Name:           textOrNil(raw.ActivityName),
		ActivityType:   textOrNil(raw.ActivityType),
		LocationName:   textOrNil(raw.LocationName),
		Description:    textOrNil(raw.ActivityDescription),
		DurationSec:    units.MillisecondsToSeconds(raw.Duration),
		DistanceM:      units.CentimetersToMeters(raw.Distance),
		ElevationGainM: units.CentimetersToMeters(raw.ElevationGain),
		AvgSpeedKmh:    units.SpeedCmPerMsToKmh(raw.WeightedMeanSpeed),
		AvgHR:          units.ToInt(raw.AvgHeartRate),
		MaxHR:          units.ToInt(raw.MaxHeartRate),
		Calories:       units.ToInt(raw.Calories),
		AvgPower:       units.ToInt(raw.AvgPower),
		Tss:            units.RoundTo(raw.TrainingStressScore, 1),
		AvgTemperature: units.RoundTo(raw.AvgTemperature, 1),
		MinTemperature: units.RoundTo(raw.MinTemperature, 1),
		MaxTemperature: units.RoundTo(raw.MaxTemperature, 1),
		// Coordinates pass through untouched.
		StartLat: raw.StartLatitude,
		StartLon: raw.StartLongitude,
	}
}

func textOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
