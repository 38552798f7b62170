// Package evaluator detects Renju line patterns — threes, fours, fives,
// and the forbidden-move conditions that apply to Black — on a
// geometry.BoardArray.
package evaluator

import "github.com/renjulib/renjulib/geometry"

// ConditionKind classifies a detected line pattern.
type ConditionKind int

const (
	UnbrokenThree ConditionKind = iota
	BrokenThree
	StraightFour
	ClosedFour
	BrokenFour
	Five
)

func (k ConditionKind) String() string {
	switch k {
	case UnbrokenThree:
		return "unbroken-three"
	case BrokenThree:
		return "broken-three"
	case StraightFour:
		return "straight-four"
	case ClosedFour:
		return "closed-four"
	case BrokenFour:
		return "broken-four"
	case Five:
		return "five"
	default:
		return "unknown"
	}
}

// isThree reports whether k belongs to the three family.
func (k ConditionKind) isThree() bool {
	return k == UnbrokenThree || k == BrokenThree
}

// isFour reports whether k belongs to the four family.
func (k ConditionKind) isFour() bool {
	return k == StraightFour || k == ClosedFour || k == BrokenFour
}

// Condition is a single detected pattern: the stones that already
// consent to it, the direction of the line they lie on, and the point
// that would realise the next-higher-order line if played.
type Condition struct {
	Kind      ConditionKind
	Direction geometry.Direction
	Stones    []geometry.Point
	Placement geometry.Point
}

// Result is the outcome of evaluating a board for one stone colour:
// every detected pattern, plus the subset of empty points forbidden to
// that colour (always empty for White).
type Result struct {
	Conditions []Condition
	Forbidden  []geometry.Point
}
