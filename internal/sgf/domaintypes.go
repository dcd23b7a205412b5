package sgf

import (
	"github.com/ChizhovVadim/GoChunks/internal/domain"
	"github.com/ChizhovVadim/GoChunks/pkg/common"
)

const (
	ResultBlackPrefix = "B+"
	ResultWhitePrefix = "W+"
	ResultVoid        = "Void"
)

type Setup struct {
	Coord  common.Coord
	Colour common.Colour
}

// Item is one node of the main line.
type Item struct {
	Setup  []Setup
	Colour common.Colour
	Move   common.Coord
	IsMove bool
}

type Game struct {
	Name     string
	Metadata domain.GameMetadata
	Items    []Item
}
