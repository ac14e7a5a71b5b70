package views

import "time"

// Composite score formulas. All are linear combinations over joined data,
// evaluated per request and never persisted.

// trendingWindow bounds the trending candidate set to recent uploads. The
// window is purely a time filter; it does not feed into the score.
const trendingWindow = 7 * 24 * time.Hour

// engagementScore weighs comments above likes above raw views.
func engagementScore(views int64, likesCount, commentsCount int) float64 {
	return float64(views)*1 + float64(likesCount)*5 + float64(commentsCount)*10
}

func trendingScore(views int64, likesCount int) float64 {
	return float64(views)*1 + float64(likesCount)*5
}

// recommendationScore mixes popularity with a uniform noise term in
// [0,100) so repeated requests reshuffle near-equal candidates. noise01 is
// a uniform draw from [0,1).
func recommendationScore(views int64, likesCount int, noise01 float64) float64 {
	return float64(views)*0.3 + float64(likesCount)*2 + noise01*100
}
