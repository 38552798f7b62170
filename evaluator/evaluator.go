package evaluator

import "github.com/renjulib/renjulib/geometry"

// cellKind classifies one line cell relative to the stone colour being
// evaluated.
type cellKind int

const (
	cellSame cellKind = iota
	cellEmpty
	cellOpponent
	cellBorder
)

func classify(line geometry.Line, board *geometry.BoardArray, stone geometry.Stone, k int) cellKind {
	if k < 0 || k >= len(line.Points) {
		return cellBorder
	}
	v := board.GetPoint(line.Points[k])
	switch {
	case v == stone:
		return cellSame
	case v == geometry.Empty:
		return cellEmpty
	default:
		return cellOpponent
	}
}

// conditionKey identifies a Condition for deduplication: the same
// pattern found via two overlapping windows collapses to one entry.
type conditionKey struct {
	kind      ConditionKind
	direction geometry.Direction
	placement geometry.Point
}

// RenjuConditions scans every line of board and reports the patterns
// stone forms, plus (for Black only) the set of points forbidden under
// Renju rules.
func RenjuConditions(board *geometry.BoardArray, stone geometry.Stone) Result {
	var conditions []Condition
	seen := make(map[conditionKey]bool)
	add := func(c Condition) {
		key := conditionKey{kind: c.Kind, direction: c.Direction, placement: c.Placement}
		if seen[key] {
			return
		}
		seen[key] = true
		conditions = append(conditions, c)
	}

	var overline []geometry.Point
	overlineSeen := make(map[geometry.Point]bool)

	for _, line := range board.AllLines() {
		if stone == geometry.Black {
			scanOverline(line, board, stone, func(p geometry.Point) {
				if !overlineSeen[p] {
					overlineSeen[p] = true
					overline = append(overline, p)
				}
			})
		}
		scanFourAndFive(line, board, stone, add)
		scanThree(line, board, stone, add)
	}

	result := Result{Conditions: conditions}
	if stone != geometry.Black {
		return result
	}

	fiveAt := make(map[geometry.Point]bool)
	threeDirs := make(map[geometry.Point]map[geometry.Direction]bool)
	fourDirs := make(map[geometry.Point]map[geometry.Direction]bool)

	for _, c := range conditions {
		switch {
		case c.Kind == Five:
			fiveAt[c.Placement] = true
		case c.Kind.isThree():
			if threeDirs[c.Placement] == nil {
				threeDirs[c.Placement] = make(map[geometry.Direction]bool)
			}
			threeDirs[c.Placement][c.Direction] = true
		case c.Kind.isFour():
			if fourDirs[c.Placement] == nil {
				fourDirs[c.Placement] = make(map[geometry.Direction]bool)
			}
			fourDirs[c.Placement][c.Direction] = true
		}
	}

	forbiddenSeen := make(map[geometry.Point]bool)
	markForbidden := func(p geometry.Point) {
		if fiveAt[p] || forbiddenSeen[p] {
			return
		}
		forbiddenSeen[p] = true
		result.Forbidden = append(result.Forbidden, p)
	}

	for _, p := range overline {
		markForbidden(p)
	}
	// Walk the conditions slice rather than the direction maps so the
	// forbidden list comes out in the same order on every call.
	for _, c := range conditions {
		switch {
		case c.Kind.isThree() && len(threeDirs[c.Placement]) >= 2:
			markForbidden(c.Placement)
		case c.Kind.isFour() && len(fourDirs[c.Placement]) >= 2:
			markForbidden(c.Placement)
		}
	}

	return result
}

// scanOverline implements the width-6 window: five Same stones and one
// Empty flag the Empty as an overline point — forbidden for Black
// regardless of any other condition, except a completed five.
func scanOverline(line geometry.Line, board *geometry.BoardArray, stone geometry.Stone, mark func(geometry.Point)) {
	n := len(line.Points)
	for j := 0; j+6 <= n; j++ {
		sameCount, emptyCount, emptyIdx := 0, 0, -1
		blocked := false
		for k := 0; k < 6; k++ {
			switch classify(line, board, stone, j+k) {
			case cellSame:
				sameCount++
			case cellEmpty:
				emptyCount++
				emptyIdx = k
			default:
				blocked = true
			}
		}
		if !blocked && sameCount == 5 && emptyCount == 1 {
			mark(line.Points[j+emptyIdx])
		}
	}
}

// scanFourAndFive implements the width-5 core window (with one guard
// cell on each side): four Same stones and one Empty that would
// complete a five. The Empty always yields a Five condition — unless,
// for Black, a guard cell is Same, meaning the completed line would
// actually run to six or more (an overline, handled separately). The
// position of the Empty within the window additionally yields a Four
// sub-classification: at either end the four stones are already
// contiguous (StraightFour if both flanking cells are open, else
// ClosedFour); in the middle the four stones have an internal gap
// (BrokenFour).
func scanFourAndFive(line geometry.Line, board *geometry.BoardArray, stone geometry.Stone, add func(Condition)) {
	n := len(line.Points)
	for j := 0; j+5 <= n; j++ {
		sameCount, emptyCount, emptyIdx := 0, 0, -1
		blocked := false
		var stones []geometry.Point
		for k := 0; k < 5; k++ {
			switch classify(line, board, stone, j+k) {
			case cellSame:
				sameCount++
				stones = append(stones, line.Points[j+k])
			case cellEmpty:
				emptyCount++
				emptyIdx = k
			default:
				blocked = true
			}
		}
		if blocked || sameCount != 4 || emptyCount != 1 {
			continue
		}

		placement := line.Points[j+emptyIdx]
		leftGuard := classify(line, board, stone, j-1)
		rightGuard := classify(line, board, stone, j+5)
		overlineRisk := leftGuard == cellSame || rightGuard == cellSame

		if stone == geometry.Black && overlineRisk {
			continue
		}

		add(Condition{Kind: Five, Direction: line.Direction, Stones: stones, Placement: placement})

		if emptyIdx == 0 || emptyIdx == 4 {
			openEnds := 0
			if leftGuard == cellEmpty {
				openEnds++
			}
			if rightGuard == cellEmpty {
				openEnds++
			}
			kind := ClosedFour
			if openEnds == 2 {
				kind = StraightFour
			}
			add(Condition{Kind: kind, Direction: line.Direction, Stones: stones, Placement: placement})
		} else {
			add(Condition{Kind: BrokenFour, Direction: line.Direction, Stones: stones, Placement: placement})
		}
	}
}

// scanThree implements the width-3 core window (with one flank cell on
// each side): two Same stones and one Empty that would complete a
// three, with both flanks open (Empty or off-board — never an
// opponent stone, which would close the shape). The Empty at an end of
// the window (beside the two existing stones, which touch) yields an
// UnbrokenThree; in the middle (splitting the two stones) it yields a
// BrokenThree.
func scanThree(line geometry.Line, board *geometry.BoardArray, stone geometry.Stone, add func(Condition)) {
	n := len(line.Points)
	for j := 0; j+3 <= n; j++ {
		sameCount, emptyCount, emptyIdx := 0, 0, -1
		blocked := false
		var stones []geometry.Point
		for k := 0; k < 3; k++ {
			switch classify(line, board, stone, j+k) {
			case cellSame:
				sameCount++
				stones = append(stones, line.Points[j+k])
			case cellEmpty:
				emptyCount++
				emptyIdx = k
			default:
				blocked = true
			}
		}
		if blocked || sameCount != 2 || emptyCount != 1 {
			continue
		}

		leftFlank := classify(line, board, stone, j-1)
		rightFlank := classify(line, board, stone, j+3)
		if leftFlank == cellOpponent || leftFlank == cellSame {
			continue
		}
		if rightFlank == cellOpponent || rightFlank == cellSame {
			continue
		}

		placement := line.Points[j+emptyIdx]
		kind := UnbrokenThree
		if emptyIdx == 1 {
			kind = BrokenThree
		}
		add(Condition{Kind: kind, Direction: line.Direction, Stones: stones, Placement: placement})
	}
}
