package common

type Position struct {
	Board      [NumPoints]Colour
	SideToMove Colour
	Ko         int
	MoveNumber int
}

func NewPosition() Position {
	return Position{
		SideToMove: Black,
		Ko:         SquareNone,
	}
}

func neighbours(sq int, buf *[4]int) []int {
	var res = buf[:0]
	var row, col = sq / BoardSize, sq % BoardSize
	if row > 0 {
		res = append(res, sq-BoardSize)
	}
	if row < BoardSize-1 {
		res = append(res, sq+BoardSize)
	}
	if col > 0 {
		res = append(res, sq-1)
	}
	if col < BoardSize-1 {
		res = append(res, sq+1)
	}
	return res
}

// PlaceStone puts a setup stone (AB/AW) without capture processing.
func (p *Position) PlaceStone(sq int, c Colour) {
	p.Board[sq] = c
	p.Ko = SquareNone
}

// MakeMove plays c for the side to move into child.
// Returns false for occupied points, ko recaptures and suicide.
func (p *Position) MakeMove(c Coord, child *Position) bool {
	*child = *p
	child.Ko = SquareNone
	child.MoveNumber++
	if c.IsPass() {
		child.SideToMove = p.SideToMove.Opposite()
		return true
	}
	if !c.OnBoard() {
		return false
	}
	var sq = FlattenCoords(c)
	if p.Board[sq] != Empty || sq == p.Ko {
		return false
	}

	var us = p.SideToMove
	var them = us.Opposite()
	child.Board[sq] = us

	var buf [4]int
	var captured int
	var capturedSq = SquareNone
	for _, nb := range neighbours(sq, &buf) {
		if child.Board[nb] == them && child.Liberties(nb) == 0 {
			captured += child.removeGroup(nb)
			capturedSq = nb
		}
	}
	if child.Liberties(sq) == 0 {
		return false
	}
	if captured == 1 {
		var stones = child.Group(sq, nil)
		if len(stones) == 1 && child.Liberties(sq) == 1 {
			child.Ko = capturedSq
		}
	}

	child.SideToMove = them
	return true
}

// Group appends the stones of the chain containing sq to stones.
func (p *Position) Group(sq int, stones []int) []int {
	var colour = p.Board[sq]
	if colour == Empty {
		return stones
	}
	var visited [NumPoints]bool
	var buf [4]int
	var start = len(stones)
	stones = append(stones, sq)
	visited[sq] = true
	for i := start; i < len(stones); i++ {
		for _, nb := range neighbours(stones[i], &buf) {
			if !visited[nb] && p.Board[nb] == colour {
				visited[nb] = true
				stones = append(stones, nb)
			}
		}
	}
	return stones
}

func (p *Position) Liberties(sq int) int {
	var stones = p.Group(sq, make([]int, 0, 16))
	return p.countLiberties(stones)
}

func (p *Position) countLiberties(stones []int) int {
	var seen [NumPoints]bool
	var buf [4]int
	var count int
	for _, s := range stones {
		for _, nb := range neighbours(s, &buf) {
			if p.Board[nb] == Empty && !seen[nb] {
				seen[nb] = true
				count++
			}
		}
	}
	return count
}

// LibertyMap stores for every stone the liberty count of its chain; empty points get 0.
func (p *Position) LibertyMap(libs *[NumPoints]int) {
	var done [NumPoints]bool
	var stones = make([]int, 0, 64)
	for sq := 0; sq < NumPoints; sq++ {
		libs[sq] = 0
		if p.Board[sq] == Empty || done[sq] {
			continue
		}
		stones = p.Group(sq, stones[:0])
		var n = p.countLiberties(stones)
		for _, s := range stones {
			libs[s] = n
			done[s] = true
		}
	}
}

func (p *Position) removeGroup(sq int) int {
	var stones = p.Group(sq, nil)
	for _, s := range stones {
		p.Board[s] = Empty
	}
	return len(stones)
}
