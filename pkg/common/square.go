package common

import "fmt"

const (
	BoardSize = 19
	NumPoints = BoardSize * BoardSize
)

const SquareNone = -1

// Coord is a point on the board. Row 0 is the top edge, as in SGF.
type Coord struct {
	Row int
	Col int
}

var CoordPass = Coord{Row: -1, Col: -1}

func (c Coord) IsPass() bool {
	return c == CoordPass
}

func (c Coord) OnBoard() bool {
	return c.Row >= 0 && c.Row < BoardSize &&
		c.Col >= 0 && c.Col < BoardSize
}

// FlattenCoords maps an on-board coordinate to [0, NumPoints).
// A pass flattens to NumPoints, which is out of range for move labels.
func FlattenCoords(c Coord) int {
	if !c.OnBoard() {
		return NumPoints
	}
	return BoardSize*c.Row + c.Col
}

// ParseSgfCoord parses SGF point notation: "pd" is column p, row d.
// Empty value and "tt" denote a pass.
func ParseSgfCoord(s string) (Coord, error) {
	if s == "" || (s == "tt" && BoardSize <= 19) {
		return CoordPass, nil
	}
	if len(s) != 2 {
		return Coord{}, fmt.Errorf("bad sgf coord %q", s)
	}
	var c = Coord{
		Col: int(s[0] - 'a'),
		Row: int(s[1] - 'a'),
	}
	if !c.OnBoard() {
		return Coord{}, fmt.Errorf("sgf coord out of board %q", s)
	}
	return c, nil
}

// String returns GTP notation, skipping column I.
func (c Coord) String() string {
	if !c.OnBoard() {
		return "pass"
	}
	var col = byte('A' + c.Col)
	if col >= 'I' {
		col++
	}
	return fmt.Sprintf("%c%d", col, BoardSize-c.Row)
}
