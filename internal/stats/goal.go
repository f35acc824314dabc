package stats

import (
	"github.com/shopspring/decimal"

	"github.com/starford/lifetrack/internal/models"
)

var hundred = decimal.NewFromInt(100)

// GoalPercent returns CurrentValue / TargetValue as a percentage. ok is false
// when the goal has no usable (absent or zero) target.
func GoalPercent(g models.Goal) (pct decimal.Decimal, ok bool) {
	if g.TargetValue == nil || g.TargetValue.IsZero() {
		return decimal.Zero, false
	}
	return g.CurrentValue.Div(*g.TargetValue).Mul(hundred), true
}

// GoalProgress returns the rounded completion percentage capped at 100.
func GoalProgress(g models.Goal) int {
	pct, ok := GoalPercent(g)
	if !ok {
		return 0
	}
	p := int(pct.Round(0).IntPart())
	if p > 100 {
		return 100
	}
	return p
}
