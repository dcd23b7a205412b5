package sgf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChizhovVadim/GoChunks/internal/domain"
	"github.com/ChizhovVadim/GoChunks/pkg/common"

	sgflib "github.com/rooklift/sgf"
)

func LoadGame(filepath string) (Game, error) {
	root, err := sgflib.Load(filepath)
	if err != nil {
		return Game{}, err
	}
	game, err := ParseGame(root)
	if err != nil {
		return Game{}, fmt.Errorf("%v: %w", filepath, err)
	}
	game.Name = filepath
	return game, nil
}

// ParseGame follows the main line (first child) from root.
func ParseGame(root *sgflib.Node) (Game, error) {
	if sz, ok := root.GetValue("SZ"); ok {
		var size, err = strconv.Atoi(strings.TrimSpace(sz))
		if err != nil {
			return Game{}, fmt.Errorf("bad board size %q", sz)
		}
		if size != common.BoardSize {
			return Game{}, fmt.Errorf("unsupported board size %v", size)
		}
	}

	var metadata = parseMetadata(root)

	var items []Item
	for node := root; node != nil; node = mainChild(node) {
		var item, err = parseItem(node)
		if err != nil {
			return Game{}, err
		}
		items = append(items, item)
	}

	return Game{
		Metadata: metadata,
		Items:    items,
	}, nil
}

func mainChild(node *sgflib.Node) *sgflib.Node {
	var children = node.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

func parseMetadata(root *sgflib.Node) domain.GameMetadata {
	var m domain.GameMetadata
	if re, ok := root.GetValue("RE"); ok {
		m.ResultRaw = strings.TrimSpace(re)
		m.Result = ParseResult(m.ResultRaw)
	}
	if ha, ok := root.GetValue("HA"); ok {
		m.Handicap, _ = strconv.Atoi(strings.TrimSpace(ha))
	}
	return m
}

// ParseResult returns 1 for a black win, -1 for a white win and 0 otherwise.
func ParseResult(re string) float32 {
	switch {
	case strings.HasPrefix(re, ResultBlackPrefix):
		return 1
	case strings.HasPrefix(re, ResultWhitePrefix):
		return -1
	default:
		return 0
	}
}

func parseItem(node *sgflib.Node) (Item, error) {
	var item Item
	for _, setup := range []struct {
		key    string
		colour common.Colour
	}{
		{"AB", common.Black},
		{"AW", common.White},
		{"AE", common.Empty},
	} {
		for _, value := range node.AllValues(setup.key) {
			var coords, err = parsePointList(value)
			if err != nil {
				return Item{}, err
			}
			for _, c := range coords {
				item.Setup = append(item.Setup, Setup{Coord: c, Colour: setup.colour})
			}
		}
	}

	for _, mv := range []struct {
		key    string
		colour common.Colour
	}{
		{"B", common.Black},
		{"W", common.White},
	} {
		if value, ok := node.GetValue(mv.key); ok {
			var c, err = common.ParseSgfCoord(value)
			if err != nil {
				return Item{}, err
			}
			item.Move = c
			item.Colour = mv.colour
			item.IsMove = true
			break
		}
	}
	return item, nil
}

// parsePointList expands compressed "aa:cc" rectangles.
func parsePointList(value string) ([]common.Coord, error) {
	var from, to, isRect = strings.Cut(value, ":")
	first, err := common.ParseSgfCoord(from)
	if err != nil {
		return nil, err
	}
	if !isRect {
		if first.IsPass() {
			return nil, nil
		}
		return []common.Coord{first}, nil
	}
	last, err := common.ParseSgfCoord(to)
	if err != nil {
		return nil, err
	}
	if first.IsPass() || last.IsPass() {
		return nil, fmt.Errorf("bad point list %q", value)
	}
	var result []common.Coord
	for row := min(first.Row, last.Row); row <= max(first.Row, last.Row); row++ {
		for col := min(first.Col, last.Col); col <= max(first.Col, last.Col); col++ {
			result = append(result, common.Coord{Row: row, Col: col})
		}
	}
	return result, nil
}
