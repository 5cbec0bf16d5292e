package models

// SleepMetrics summarizes one night of sleep.
type SleepMetrics struct {
	TotalHours          float64 `bson:"total_hours" json:"totalHours" validate:"gte=0"` // e.g. 7.5
	DeepSleepPercentage float64 `bson:"deep_sleep_percentage" json:"deepSleepPercentage" validate:"gte=0,lte=100"`
	WakeCount           int     `bson:"wake_count" json:"wakeCount" validate:"gte=0"`
}

// ActivityMetrics summarizes one day of movement.
type ActivityMetrics struct {
	Steps    int     `bson:"steps" json:"steps" validate:"gte=0"`
	Calories float64 `bson:"calories" json:"calories" validate:"gte=0"` // kcal
}

// HeartRateMetrics holds the day's resting heart rate in bpm.
type HeartRateMetrics struct {
	Resting float64 `bson:"resting" json:"resting" validate:"gt=0"`
}

// HealthData is the canonical daily health record. The three metric families
// are pointers so that a partially aggregated record (some streams absent)
// can be told apart from one carrying explicit zeros, and so that missing
// top-level fields fail validation at the boundary. Once produced a record is
// treated as an immutable value; scoring never mutates it.
type HealthData struct {
	Date      string            `bson:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Sleep     *SleepMetrics     `bson:"sleep" json:"sleep" validate:"required"`
	Activity  *ActivityMetrics  `bson:"activity" json:"activity" validate:"required"`
	HeartRate *HeartRateMetrics `bson:"heart_rate" json:"heartRate" validate:"required"`
}

// StressMetrics and OxygenMetrics only exist in the legacy payload shape.
type StressMetrics struct {
	Average float64 `json:"average" validate:"gte=0,lte=100"` // lower is better
}

type OxygenMetrics struct {
	Average float64 `json:"average" validate:"gte=0,lte=100"` // percent saturation
}

// LegacyVitals is the deprecated six-family record shape (stress and SpO2
// alongside the canonical families). It is accepted at the wire boundary
// only; Record folds it into the canonical four-family schema, dropping the
// extended vitals.
type LegacyVitals struct {
	Date      string            `json:"date"`
	Sleep     *SleepMetrics     `json:"sleep" validate:"required"`
	Activity  *ActivityMetrics  `json:"activity" validate:"required"`
	HeartRate *HeartRateMetrics `json:"heartRate" validate:"required"`
	Stress    *StressMetrics    `json:"stress,omitempty"`
	SpO2      *OxygenMetrics    `json:"spo2,omitempty"`
}

// Record converts a legacy payload to the canonical record.
func (v LegacyVitals) Record() HealthData {
	return HealthData{
		Date:      v.Date,
		Sleep:     v.Sleep,
		Activity:  v.Activity,
		HeartRate: v.HeartRate,
	}
}

// Merge overlays the non-nil families of partial onto base and returns the
// result. Neither argument is modified.
func Merge(base, partial HealthData) HealthData {
	merged := base
	if partial.Date != "" {
		merged.Date = partial.Date
	}
	if partial.Sleep != nil {
		merged.Sleep = partial.Sleep
	}
	if partial.Activity != nil {
		merged.Activity = partial.Activity
	}
	if partial.HeartRate != nil {
		merged.HeartRate = partial.HeartRate
	}
	return merged
}

// DefaultHealthData returns the baseline record used when nothing has been
// stored yet.
func DefaultHealthData() HealthData {
	return HealthData{
		Sleep:     &SleepMetrics{TotalHours: 7.5, DeepSleepPercentage: 25, WakeCount: 1},
		Activity:  &ActivityMetrics{Steps: 8500, Calories: 450},
		HeartRate: &HeartRateMetrics{Resting: 62},
	}
}
