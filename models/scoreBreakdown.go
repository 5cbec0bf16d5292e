package models

// ScoreBreakdown is the derived wellbeing score: the weighted composite plus
// one sub-score per metric family, all integers in [0,100]. It is computed
// fresh on every scoring pass and never persisted.
type ScoreBreakdown struct {
	Total     int `json:"total"`
	Sleep     int `json:"sleep"`
	Steps     int `json:"steps"`
	Calories  int `json:"calories"`
	HeartRate int `json:"heartRate"`
}

// ConditionMessage is the human-readable tier selected for a composite score.
type ConditionMessage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Highlight   string `json:"highlight"`
}
