package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromByte_CentreH8(t *testing.T) {
	p, ok, err := FromByte(0x78)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, New(7, 7), p)
}

func TestFromByte_Null(t *testing.T) {
	p, ok, err := FromByte(0x00)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, p.IsNull())
}

func TestFromByte_Underflow(t *testing.T) {
	// low nibble 0 with a nonzero byte underflows when the +1 is removed.
	_, _, err := FromByte(0xF0)
	assert.Error(t, err)
}

func TestPoint_RoundTrip(t *testing.T) {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			packed := byte(((x+1)&0x0F) | (y << 4))
			p, ok, err := FromByte(packed)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, x, p.X)
			assert.Equal(t, y, p.Y)
			assert.Equal(t, packed, p.ToByte())
		}
	}
}

func TestGetLine_ContainsPointAndIsSorted(t *testing.T) {
	b := NewBoardArray()
	dirs := []Direction{Horizontal, Vertical, DiagonalBackslash, DiagonalSlash}

	for _, dir := range dirs {
		line := b.GetLine(dir, New(7, 7))
		found := false
		for _, pt := range line.Points {
			if pt.Equal(New(7, 7)) {
				found = true
			}
		}
		assert.True(t, found, "line for %v must contain query point", dir)
		assert.True(t, len(line.Points) >= 1)
		for i := 1; i < len(line.Points); i++ {
			prev, cur := line.Points[i-1], line.Points[i]
			if dir == Vertical {
				assert.Greater(t, cur.Y, prev.Y, "line for %v must be sorted", dir)
			} else {
				assert.Greater(t, cur.X, prev.X, "line for %v must be sorted", dir)
			}
		}
	}
}

func TestGetLine_SameForAnyPointOnLine(t *testing.T) {
	b := NewBoardArray()

	horizA := b.GetLine(Horizontal, New(3, 5))
	horizB := b.GetLine(Horizontal, New(11, 5))
	assert.Equal(t, horizA.Points, horizB.Points)

	vertA := b.GetLine(Vertical, New(2, 1))
	vertB := b.GetLine(Vertical, New(2, 13))
	assert.Equal(t, vertA.Points, vertB.Points)

	diagA := b.GetLine(DiagonalBackslash, New(0, 3))
	diagB := b.GetLine(DiagonalBackslash, New(5, 8))
	assert.Equal(t, diagA.Points, diagB.Points)

	antiA := b.GetLine(DiagonalSlash, New(0, 10))
	antiB := b.GetLine(DiagonalSlash, New(7, 3))
	assert.Equal(t, antiA.Points, antiB.Points)
}

func TestAllLines_EveryPointFourTimes(t *testing.T) {
	b := NewBoardArray()
	counts := make(map[Point]int)
	for _, line := range b.AllLines() {
		for _, pt := range line.Points {
			counts[pt]++
		}
	}

	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			assert.Equal(t, 4, counts[New(x, y)], "point (%d,%d) should appear 4 times", x, y)
		}
	}
}

func TestBoardArray_SetGetRoundTrip(t *testing.T) {
	b := NewBoardArray()
	b.Set(7, 7, Black)
	assert.Equal(t, Black, b.Get(7, 7))
	assert.Equal(t, Empty, b.Get(0, 0))

	idx := New(3, 4).To1D(BoardSize)
	b.SetPoint(New(3, 4), White)
	assert.Equal(t, White, b.GetIndex(idx))
}

func TestFrom1D_RoundTrip(t *testing.T) {
	for idx := 0; idx < BoardSize*BoardSize; idx++ {
		p := From1D(idx, BoardSize)
		assert.Equal(t, idx, p.To1D(BoardSize))
	}
}
