package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ChizhovVadim/GoChunks/internal/domain"
	"github.com/ChizhovVadim/GoChunks/internal/sgf"
)

const SgfExt = ".sgf"

// FindSgfFiles lists sgf files directly inside each folder, in folder order.
func FindSgfFiles(datasetDirs ...string) ([]string, error) {
	var result []string
	for _, folderPath := range datasetDirs {
		dirs, err := os.ReadDir(folderPath)
		if err != nil {
			return nil, err
		}
		for _, de := range dirs {
			if !de.IsDir() && strings.HasSuffix(de.Name(), SgfExt) {
				result = append(result, filepath.Join(folderPath, de.Name()))
			}
		}
	}
	return result, nil
}

// PositionsFromSgf yields the usable positions of one game record.
func PositionsFromSgf(filepath string) (Iterator[domain.PositionWithContext], error) {
	game, err := sgf.LoadGame(filepath)
	if err != nil {
		return nil, err
	}
	return Filter[domain.PositionWithContext](sgf.NewPositionIterator(&game),
		(*domain.PositionWithContext).IsUsable), nil
}

// UsablePositions chains PositionsFromSgf over files, loading each file on demand.
func UsablePositions(sgfFiles []string) Iterator[domain.PositionWithContext] {
	return Chain(sgfFiles, PositionsFromSgf)
}
