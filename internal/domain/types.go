package domain

import "github.com/ChizhovVadim/GoChunks/pkg/common"

const MaxUsableHandicap = 4

type GameMetadata struct {
	Result      float32
	ResultRaw   string
	Handicap    int
}

func (m *GameMetadata) IsVoid() bool {
	return m.ResultRaw == "Void"
}

// PositionWithContext is a board state, the move played from it and the game outcome.
type PositionWithContext struct {
	Position common.Position
	NextMove common.Coord
	Metadata *GameMetadata
}

func (p *PositionWithContext) Result() float32 {
	if p.Metadata == nil {
		return 0
	}
	return p.Metadata.Result
}

func (p *PositionWithContext) IsUsable() bool {
	return p.NextMove.OnBoard() &&
		p.Metadata != nil &&
		!p.Metadata.IsVoid() &&
		p.Metadata.Handicap <= MaxUsableHandicap
}
