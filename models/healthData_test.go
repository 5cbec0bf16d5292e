package models

import (
	"encoding/json"
	"testing"
)

func TestMerge(t *testing.T) {
	base := HealthData{
		Date:      "2025-11-01",
		Sleep:     &SleepMetrics{TotalHours: 7, DeepSleepPercentage: 22, WakeCount: 1},
		Activity:  &ActivityMetrics{Steps: 6000, Calories: 380},
		HeartRate: &HeartRateMetrics{Resting: 64},
	}

	// A partial record only overrides the families it carries.
	partial := HealthData{
		Date:     "2025-11-02",
		Activity: &ActivityMetrics{Steps: 9100, Calories: 520},
	}

	merged := Merge(base, partial)
	if merged.Date != "2025-11-02" {
		t.Errorf("merged date = %q, want the partial's date", merged.Date)
	}
	if merged.Activity.Steps != 9100 {
		t.Errorf("merged steps = %d, want 9100", merged.Activity.Steps)
	}
	if merged.Sleep != base.Sleep {
		t.Error("sleep should be carried over from the base record")
	}
	if merged.HeartRate != base.HeartRate {
		t.Error("heart rate should be carried over from the base record")
	}

	// The base value is untouched.
	if base.Activity.Steps != 6000 {
		t.Errorf("base mutated: steps = %d", base.Activity.Steps)
	}

	// An entirely empty partial changes nothing.
	if got := Merge(base, HealthData{}); got != base {
		t.Errorf("Merge(base, empty) = %+v, want base unchanged", got)
	}
}

func TestLegacyVitalsRecord(t *testing.T) {
	legacy := LegacyVitals{
		Date:      "2025-11-02",
		Sleep:     &SleepMetrics{TotalHours: 7.5, DeepSleepPercentage: 25, WakeCount: 1},
		Activity:  &ActivityMetrics{Steps: 8500, Calories: 450},
		HeartRate: &HeartRateMetrics{Resting: 62},
		Stress:    &StressMetrics{Average: 35},
		SpO2:      &OxygenMetrics{Average: 98},
	}

	got := legacy.Record()
	if got.Date != legacy.Date {
		t.Errorf("date = %q, want %q", got.Date, legacy.Date)
	}
	// The canonical families pass through untouched; the extended vitals are
	// dropped at this boundary.
	if got.Sleep != legacy.Sleep || got.Activity != legacy.Activity || got.HeartRate != legacy.HeartRate {
		t.Errorf("canonical families changed during conversion: %+v", got)
	}
}

// A record survives the gateway's wire format unchanged.
func TestHealthDataRoundTrip(t *testing.T) {
	original := HealthData{
		Date:      "2025-11-02",
		Sleep:     &SleepMetrics{TotalHours: 6.8, DeepSleepPercentage: 19, WakeCount: 3},
		Activity:  &ActivityMetrics{Steps: 10250, Calories: 612},
		HeartRate: &HeartRateMetrics{Resting: 58},
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded HealthData
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.Date != original.Date ||
		*decoded.Sleep != *original.Sleep ||
		*decoded.Activity != *original.Activity ||
		*decoded.HeartRate != *original.HeartRate {
		t.Errorf("round trip changed the record: %+v -> %+v", original, decoded)
	}
}
