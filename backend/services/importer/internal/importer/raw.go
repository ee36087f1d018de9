package importer

// RawActivityRecord mirrors one activity row of the vendor export. The export
// is loosely typed: apart from the identifier every field may be missing, so
// numerics are pointers and absence flows through normalization untouched.
// Units are the vendor's raw ones: beginTimestamp is epoch milliseconds,
// duration is milliseconds, distance and elevationGain are centimeters and
// weightedMeanSpeed is centimeters per millisecond.
type RawActivityRecord struct {
	ActivityID          int64    `json:"activityId"`
	ActivityName        string   `json:"activityName"`
	ActivityType        string   `json:"activityType"`
	ActivityDescription string   `json:"activityDescription"`
	LocationName        string   `json:"locationName"`
	BeginTimestamp      *float64 `json:"beginTimestamp"`
	Duration            *float64 `json:"duration"`
	Distance            *float64 `json:"distance"`
	ElevationGain       *float64 `json:"elevationGain"`
	WeightedMeanSpeed   *float64 `json:"weightedMeanSpeed"`
	AvgHeartRate        *float64 `json:"averageHeartRate"`
	MaxHeartRate        *float64 `json:"maxHeartRate"`
	Calories            *float64 `json:"calories"`
	AvgPower            *float64 `json:"averagePower"`
	TrainingStressScore *float64 `json:"trainingStressScore"`
	AvgTemperature      *float64 `json:"averageTemperature"`
	MinTemperature      *float64 `json:"minTemperature"`
	MaxTemperature      *float64 `json:"maxTemperature"`
	StartLatitude       *float64 `json:"startLatitude"`
	StartLongitude      *float64 `json:"startLongitude"`
}
