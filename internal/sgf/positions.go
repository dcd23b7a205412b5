package sgf

import (
	"io"
	"log"

	"github.com/ChizhovVadim/GoChunks/internal/domain"
	"github.com/ChizhovVadim/GoChunks/pkg/common"
)

// PositionIterator replays the main line, yielding the position before every move.
// Replay stops at the first illegal move.
type PositionIterator struct {
	game  *Game
	index int
	pos   common.Position
}

func NewPositionIterator(game *Game) *PositionIterator {
	return &PositionIterator{
		game: game,
		pos:  common.NewPosition(),
	}
}

func (it *PositionIterator) Next() (domain.PositionWithContext, error) {
	var items = it.game.Items
	for it.index < len(items) {
		var item = &items[it.index]
		it.index++

		for _, s := range item.Setup {
			it.pos.PlaceStone(common.FlattenCoords(s.Coord), s.Colour)
		}
		if !item.IsMove {
			continue
		}

		it.pos.SideToMove = item.Colour
		var child common.Position
		if !it.pos.MakeMove(item.Move, &child) {
			log.Println("replay stopped",
				"game", it.game.Name,
				"moveNumber", it.pos.MoveNumber+1,
				"move", item.Move)
			it.index = len(items)
			break
		}
		var result = domain.PositionWithContext{
			Position: it.pos,
			NextMove: item.Move,
			Metadata: &it.game.Metadata,
		}
		it.pos = child
		return result, nil
	}
	return domain.PositionWithContext{}, io.EOF
}
