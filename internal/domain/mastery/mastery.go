// Package mastery implements the mastery-level policy: the deterministic
// mapping from accumulated correct/incorrect review counts to a 0-5 retention
// level. The computation is owned entirely by the server; mastery values are
// never accepted from callers.
package mastery

// Tier is one row of the mastery policy table. A record qualifies for a tier
// when its accuracy and total review count both meet the tier's minimums.
type Tier struct {
	MinAccuracy float64
	MinTotal    int
	Level       int
}

// DefaultTiers returns the standard policy table, ordered from highest level
// to lowest. Evaluation checks tiers in order and the first match wins, so
// higher tiers must come first.
func DefaultTiers() []Tier {
	return []Tier{
		{MinAccuracy: 0.9, MinTotal: 3, Level: 5},
		{MinAccuracy: 0.8, MinTotal: 2, Level: 4},
		{MinAccuracy: 0.7, MinTotal: 2, Level: 3},
		{MinAccuracy: 0.6, MinTotal: 1, Level: 2},
		{MinAccuracy: 0.0, MinTotal: 1, Level: 1},
	}
}

// Level computes the mastery level for the given review counts using the
// default policy table. Zero reviews always yield level 0.
func Level(correct, incorrect int) int {
	return LevelWithTiers(correct, incorrect, DefaultTiers())
}

// LevelWithTiers computes the mastery level using a custom policy table.
// The table must be ordered highest level first.
func LevelWithTiers(correct, incorrect int, tiers []Tier) int {
	total := correct + incorrect
	if total <= 0 {
		return 0
	}

	accuracy := float64(correct) / float64(total)
	for _, tier := range tiers {
		if total >= tier.MinTotal && accuracy >= tier.MinAccuracy {
			return tier.Level
		}
	}

	return 0
}
