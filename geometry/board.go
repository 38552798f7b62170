package geometry

// Direction identifies one of the four line families a point can be
// scanned along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	DiagonalBackslash // '\', increasing x pairs with increasing y
	DiagonalSlash     // '/', increasing x pairs with decreasing y
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalBackslash:
		return "diagonal\\"
	case DiagonalSlash:
		return "diagonal/"
	default:
		return "unknown"
	}
}

// BoardArray is a BoardSize x BoardSize array of stone occupancy,
// addressable by (x,y), by row-major 1D index, or by Point.
type BoardArray struct {
	cells [BoardSize * BoardSize]Stone
}

// NewBoardArray returns an empty board.
func NewBoardArray() *BoardArray {
	return &BoardArray{}
}

// Get returns the stone at (x,y). Out-of-bounds coordinates return Empty.
func (b *BoardArray) Get(x, y int) Stone {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return Empty
	}
	return b.cells[y*BoardSize+x]
}

// GetPoint returns the stone at p, or Empty for a null/out-of-bounds point.
func (b *BoardArray) GetPoint(p Point) Stone {
	if p.IsNull() || !p.InBounds() {
		return Empty
	}
	return b.Get(p.X, p.Y)
}

// GetIndex returns the stone at row-major index idx.
func (b *BoardArray) GetIndex(idx int) Stone {
	if idx < 0 || idx >= len(b.cells) {
		return Empty
	}
	return b.cells[idx]
}

// Set places a stone at (x,y). Out-of-bounds coordinates are a no-op.
func (b *BoardArray) Set(x, y int, s Stone) {
	if x < 0 || x >= BoardSize || y < 0 || y >= BoardSize {
		return
	}
	b.cells[y*BoardSize+x] = s
}

// SetPoint places a stone at p.
func (b *BoardArray) SetPoint(p Point, s Stone) {
	if p.IsNull() || !p.InBounds() {
		return
	}
	b.Set(p.X, p.Y, s)
}

// Line is an ordered, on-board sequence of points lying along one
// Direction through a shared point, always produced in canonical order
// (see GetLine).
type Line struct {
	Direction Direction
	Points    []Point
}

// GetLine yields the full line through p in the given direction, always
// iterated from the canonical start (leftmost/topmost for horizontal and
// vertical, the lowest-x endpoint for both diagonal families) so that
// any two calls with points on the same line produce identical
// sequences.
func (b *BoardArray) GetLine(dir Direction, p Point) Line {
	switch dir {
	case Horizontal:
		pts := make([]Point, BoardSize)
		for x := 0; x < BoardSize; x++ {
			pts[x] = New(x, p.Y)
		}
		return Line{Direction: dir, Points: pts}
	case Vertical:
		pts := make([]Point, BoardSize)
		for y := 0; y < BoardSize; y++ {
			pts[y] = New(p.X, y)
		}
		return Line{Direction: dir, Points: pts}
	case DiagonalBackslash:
		d := p.X - p.Y
		startX := 0
		if d > 0 {
			startX = d
		}
		startY := startX - d
		var pts []Point
		for x, y := startX, startY; x < BoardSize && y < BoardSize; x, y = x+1, y+1 {
			pts = append(pts, New(x, y))
		}
		return Line{Direction: dir, Points: pts}
	case DiagonalSlash:
		s := p.X + p.Y
		startX := 0
		if s >= BoardSize {
			startX = s - (BoardSize - 1)
		}
		startY := s - startX
		var pts []Point
		for x, y := startX, startY; x < BoardSize && y >= 0; x, y = x+1, y-1 {
			pts = append(pts, New(x, y))
		}
		return Line{Direction: dir, Points: pts}
	default:
		return Line{}
	}
}

// AllLines yields every horizontal row, every vertical column, and every
// diagonal in both senses — each line exactly once. Every on-board point
// appears in exactly one line per direction, four times overall.
func (b *BoardArray) AllLines() []Line {
	lines := make([]Line, 0, BoardSize*2+(2*BoardSize-1)*2)

	for y := 0; y < BoardSize; y++ {
		lines = append(lines, b.GetLine(Horizontal, New(0, y)))
	}
	for x := 0; x < BoardSize; x++ {
		lines = append(lines, b.GetLine(Vertical, New(x, 0)))
	}
	for d := -(BoardSize - 1); d <= BoardSize-1; d++ {
		startX, startY := 0, 0
		if d > 0 {
			startX = d
		} else {
			startY = -d
		}
		lines = append(lines, b.GetLine(DiagonalBackslash, New(startX, startY)))
	}
	for s := 0; s <= 2*(BoardSize-1); s++ {
		startX := 0
		if s >= BoardSize {
			startX = s - (BoardSize - 1)
		}
		startY := s - startX
		lines = append(lines, b.GetLine(DiagonalSlash, New(startX, startY)))
	}

	return lines
}
