package services

import "github.com/oshomadesse/health-score-api/models"

// ConditionFor selects the message tier for a composite score. Bands are
// checked from highest to lowest; the function is total over all integers,
// so out-of-range scores resolve to the extreme tiers.
func ConditionFor(score int) models.ConditionMessage {
	switch {
	case score >= 90:
		return models.ConditionMessage{
			Title:       "神レベルのコンディション",
			Description: "信じられないほどの活力です！今日は何をやっても上手くいくでしょう。新しいことに挑戦する絶好のチャンスです。",
			Highlight:   "神",
		}
	case score >= 80:
		return models.ConditionMessage{
			Title:       "絶好調！",
			Description: "しょーまの活力は最高潮です。質の高い睡眠と適度な活動がスコアを押し上げています。このリズムを維持しましょう！",
			Highlight:   "最高",
		}
	case score >= 70:
		return models.ConditionMessage{
			Title:       "かなり良い調子",
			Description: "心身ともに充実しています。集中力が高まっているので、重要なタスクを片付けるのに適しています。",
			Highlight:   "充実",
		}
	case score >= 60:
		return models.ConditionMessage{
			Title:       "良好なコンディション",
			Description: "安定した状態です。少しの運動やリラックスでさらにスコアアップが狙えます。",
			Highlight:   "良好",
		}
	case score >= 50:
		return models.ConditionMessage{
			Title:       "平均的な状態",
			Description: "可もなく不可もなく、フラットな状態です。無理せずマイペースに過ごすのが吉です。",
			Highlight:   "普通",
		}
	case score >= 40:
		return models.ConditionMessage{
			Title:       "あと一歩",
			Description: "少し疲れが溜まっているかもしれません。早めの休息や軽いストレッチを取り入れてみましょう。",
			Highlight:   "注意",
		}
	case score >= 30:
		return models.ConditionMessage{
			Title:       "お疲れ気味です",
			Description: "疲労の色が見えます。今日は早めに仕事を切り上げて、ゆっくりお風呂に浸かりましょう。",
			Highlight:   "疲労",
		}
	case score >= 20:
		return models.ConditionMessage{
			Title:       "休息を優先してください",
			Description: "エネルギーが枯渇しつつあります。パフォーマンスが低下しているので、無理は禁物です。",
			Highlight:   "休息",
		}
	case score >= 10:
		return models.ConditionMessage{
			Title:       "限界が近いです",
			Description: "心身ともに悲鳴を上げています。今すぐ休むことを強く推奨します。",
			Highlight:   "警告",
		}
	default:
		return models.ConditionMessage{
			Title:       "緊急チャージが必要",
			Description: "バッテリー切れです。今日は何もせず、ひたすら眠ることを許してください。",
			Highlight:   "緊急",
		}
	}
}
