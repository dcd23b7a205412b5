package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playMoves(t *testing.T, moves ...string) Position {
	t.Helper()
	var pos = NewPosition()
	for _, m := range moves {
		var c, err = ParseSgfCoord(m)
		require.NoError(t, err)
		var child Position
		require.True(t, pos.MakeMove(c, &child), "illegal move %v", m)
		pos = child
	}
	return pos
}

func TestMakeMoveAlternatesColour(t *testing.T) {
	var pos = playMoves(t, "pd", "dp")
	assert.Equal(t, Black, pos.Board[FlattenCoords(Coord{3, 15})])
	assert.Equal(t, White, pos.Board[FlattenCoords(Coord{15, 3})])
	assert.Equal(t, Black, pos.SideToMove)
	assert.Equal(t, 2, pos.MoveNumber)
}

func TestCaptureInCorner(t *testing.T) {
	// W aa is captured by B ba + B ab.
	var pos = playMoves(t, "ba", "aa", "ab")
	assert.Equal(t, Empty, pos.Board[FlattenCoords(Coord{0, 0})])
	assert.Equal(t, SquareNone, pos.Ko)
}

func TestSuicideIsIllegal(t *testing.T) {
	var pos = playMoves(t, "ba", "ss", "ab")
	var child Position
	assert.False(t, pos.MakeMove(Coord{0, 0}, &child))
}

func TestOccupiedIsIllegal(t *testing.T) {
	var pos = playMoves(t, "pd")
	var child Position
	assert.False(t, pos.MakeMove(Coord{3, 15}, &child))
}

func TestKo(t *testing.T) {
	//   a b c d
	// a . B W .
	// b B W . W
	// c . B W .
	var pos = playMoves(t,
		"ba", "ca",
		"ab", "db",
		"bc", "cc",
		"ss", "bb",
	)
	// Black captures W bb by playing cb.
	var child Position
	require.True(t, pos.MakeMove(Coord{Row: 1, Col: 2}, &child))
	assert.Equal(t, Empty, child.Board[FlattenCoords(Coord{1, 1})])
	assert.Equal(t, FlattenCoords(Coord{1, 1}), child.Ko)

	// White cannot retake immediately.
	var retake Position
	assert.False(t, child.MakeMove(Coord{1, 1}, &retake))

	// After a pass exchange the ko is lifted.
	var p1, p2 Position
	require.True(t, child.MakeMove(CoordPass, &p1))
	require.True(t, p1.MakeMove(CoordPass, &p2))
	assert.Equal(t, SquareNone, p2.Ko)
	assert.True(t, p2.MakeMove(Coord{1, 1}, &retake))
}

func TestLibertyMap(t *testing.T) {
	var pos = playMoves(t, "aa", "ss", "ba")
	var libs [NumPoints]int
	pos.LibertyMap(&libs)
	assert.Equal(t, 3, libs[FlattenCoords(Coord{0, 0})])
	assert.Equal(t, 3, libs[FlattenCoords(Coord{0, 1})])
	assert.Equal(t, 2, libs[FlattenCoords(Coord{18, 18})])
	assert.Equal(t, 0, libs[FlattenCoords(Coord{5, 5})])
	assert.Equal(t, 3, pos.Liberties(FlattenCoords(Coord{0, 0})))
}
