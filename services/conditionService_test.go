package services

import "testing"

func TestConditionForBands(t *testing.T) {
	tests := []struct {
		score     int
		wantTitle string
	}{
		{100, "神レベルのコンディション"},
		{95, "神レベルのコンディション"},
		{90, "神レベルのコンディション"},
		{89, "絶好調！"},
		{85, "絶好調！"},
		{75, "かなり良い調子"},
		{65, "良好なコンディション"},
		{55, "平均的な状態"},
		{45, "あと一歩"},
		{35, "お疲れ気味です"},
		{25, "休息を優先してください"},
		{15, "限界が近いです"},
		{10, "限界が近いです"},
		{9, "緊急チャージが必要"},
		{5, "緊急チャージが必要"},
		{0, "緊急チャージが必要"},
		// Total over all integers: out-of-range scores hit the extremes.
		{-5, "緊急チャージが必要"},
		{150, "神レベルのコンディション"},
	}

	for _, tc := range tests {
		got := ConditionFor(tc.score)
		if got.Title != tc.wantTitle {
			t.Errorf("ConditionFor(%d).Title = %q, want %q", tc.score, got.Title, tc.wantTitle)
		}
	}
}

// Every integer score resolves to exactly one band, and neighboring scores
// never skip a band boundary.
func TestConditionForExhaustive(t *testing.T) {
	thresholds := []int{90, 80, 70, 60, 50, 40, 30, 20, 10}

	for score := 0; score <= 100; score++ {
		got := ConditionFor(score)
		if got.Title == "" || got.Description == "" || got.Highlight == "" {
			t.Fatalf("ConditionFor(%d) returned an incomplete message: %+v", score, got)
		}

		// The selected tier must match a descending threshold scan.
		want := ConditionFor(-1) // lowest tier
		for _, th := range thresholds {
			if score >= th {
				want = ConditionFor(th)
				break
			}
		}
		if got != want {
			t.Errorf("ConditionFor(%d) = %+v, want the %q tier", score, got, want.Title)
		}
	}
}
