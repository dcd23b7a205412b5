package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ChizhovVadim/GoChunks/internal/domain"
	"github.com/ChizhovVadim/GoChunks/internal/features"
)

const TestChunkName = "test.chunk.gz"

func TrainChunkName(index int) string {
	return fmt.Sprintf("train%d.chunk.gz", index)
}

type ChunkService struct {
	FeatureProvider features.IFeatureProvider
	Threads         int
}

// ProcessRawData converts every sgf file of datasetDirs into one test chunk
// and numbered training chunks inside processedDir.
func (cs *ChunkService) ProcessRawData(
	ctx context.Context,
	datasetDirs []string,
	processedDir string,
) error {
	log.Println("process raw data started")
	defer log.Println("process raw data finished")

	sgfFiles, err := FindSgfFiles(datasetDirs...)
	if err != nil {
		return err
	}
	log.Printf("%v sgfs found.", len(sgfFiles))
	var estNumPositions = len(sgfFiles) * PositionsPerGame
	log.Printf("Estimated number of chunks: %v", estNumPositions/ChunkSize)

	testChunk, trainingChunks, err := SplitTestTraining(UsablePositions(sgfFiles), estNumPositions)
	if err != nil {
		return err
	}
	log.Printf("Allocating %v positions as test; remainder as training", len(testChunk))

	err = os.MkdirAll(processedDir, os.ModePerm)
	if err != nil {
		return err
	}

	log.Println("Writing test chunk")
	err = cs.writeChunk(ctx, testChunk, true, filepath.Join(processedDir, TestChunkName))
	if err != nil {
		return err
	}

	var chunkCount int
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunk, err := trainingChunks.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if chunkCount%10 == 0 {
			log.Printf("Writing training chunk %v", chunkCount)
		}
		err = cs.writeChunk(ctx, chunk, false, filepath.Join(processedDir, TrainChunkName(chunkCount)))
		if err != nil {
			return err
		}
		chunkCount++
	}
	log.Printf("%v chunks written", chunkCount)
	return nil
}

func (cs *ChunkService) writeChunk(
	ctx context.Context,
	positions []domain.PositionWithContext,
	isTest bool,
	filename string,
) error {
	var featureProvider = cs.FeatureProvider
	if featureProvider == nil {
		featureProvider = features.DefaultFeatures
	}
	d, err := FromPositionsWithContext(ctx, positions, isTest, featureProvider, cs.Threads)
	if err != nil {
		return err
	}
	return d.WriteFile(filename)
}
