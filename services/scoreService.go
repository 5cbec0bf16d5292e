package services

import (
	"math"

	"github.com/oshomadesse/health-score-api/models"
)

// Composite weights. Must sum to exactly 1.0.
var (
	weightSleep     = 0.40
	weightSteps     = 0.30
	weightCalories  = 0.20
	weightHeartRate = 0.10
)

const (
	stepsTarget    = 8000.0 // daily step goal
	caloriesTarget = 500.0  // kcal active burn goal
)

// -------- Wellbeing scoring --------

// sleepScore: duration part (max 60) + deep-sleep part (max 40).
// Ideal: 7-9 hours with >= 20% deep sleep.
func sleepScore(s models.SleepMetrics) float64 {
	score := 0.0

	if s.TotalHours >= 7 && s.TotalHours <= 9 {
		score += 60
	} else if s.TotalHours >= 6 {
		score += 40
	} else {
		score += math.Max(0, s.TotalHours*5)
	}

	if s.DeepSleepPercentage >= 20 {
		score += 40
	} else {
		score += s.DeepSleepPercentage * 2
	}

	return score
}

// stepsScore ramps linearly to the step goal and caps at 100.
func stepsScore(steps int) float64 {
	return math.Min(100, float64(steps)/stepsTarget*100)
}

// caloriesScore ramps linearly to the active-burn goal and caps at 100.
func caloriesScore(calories float64) float64 {
	return math.Min(100, calories/caloriesTarget*100)
}

// heartRateScore: resting 50-70 bpm is ideal. Below 50 is treated as
// acceptable (athletes); above 70 degrades 2 points per bpm.
func heartRateScore(resting float64) float64 {
	if resting >= 50 && resting <= 70 {
		return 100
	}
	if resting < 50 {
		return 90
	}
	return math.Max(0, 100-(resting-70)*2)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// CalculateScore maps a canonical health record to its score breakdown.
// Pure and deterministic: identical input always yields identical output.
// Each sub-score is clamped to [0,100] before weighting; sub-scores and the
// total are rounded half away from zero (math.Round).
func CalculateScore(data models.HealthData) models.ScoreBreakdown {
	var (
		sleep     models.SleepMetrics
		activity  models.ActivityMetrics
		heartRate models.HeartRateMetrics
	)
	if data.Sleep != nil {
		sleep = *data.Sleep
	}
	if data.Activity != nil {
		activity = *data.Activity
	}
	if data.HeartRate != nil {
		heartRate = *data.HeartRate
	}

	sleepPts := clampScore(sleepScore(sleep))
	stepsPts := clampScore(stepsScore(activity.Steps))
	caloriesPts := clampScore(caloriesScore(activity.Calories))
	hrPts := clampScore(heartRateScore(heartRate.Resting))

	total := sleepPts*weightSleep +
		stepsPts*weightSteps +
		caloriesPts*weightCalories +
		hrPts*weightHeartRate

	return models.ScoreBreakdown{
		Total:     int(math.Round(total)),
		Sleep:     int(math.Round(sleepPts)),
		Steps:     int(math.Round(stepsPts)),
		Calories:  int(math.Round(caloriesPts)),
		HeartRate: int(math.Round(hrPts)),
	}
}
