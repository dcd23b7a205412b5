package dataset

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ChizhovVadim/GoChunks/internal/domain"
	"github.com/ChizhovVadim/GoChunks/internal/features"
	"github.com/ChizhovVadim/GoChunks/pkg/common"

	"golang.org/x/sync/errgroup"
)

// Dataset holds parallel example arrays:
// posFeatures [dataSize, boardSize, boardSize, inputPlanes] and
// nextMoves [dataSize, boardSize*boardSize] one-hot rows, both row-major.
// results is kept only for datasets built from positions.
type Dataset struct {
	posFeatures []float32
	nextMoves   []int16
	results     []float32
	isTest      bool
	dataSize    int
	boardSize   int
	inputPlanes int

	indexWithinEpoch int
	rnd              *rand.Rand
}

// NewDataset panics if posFeatures and nextMoves describe different example counts.
func NewDataset(
	posFeatures []float32,
	nextMoves []int16,
	results []float32,
	boardSize int,
	inputPlanes int,
	isTest bool,
) *Dataset {
	if boardSize <= 0 || inputPlanes <= 0 {
		panic(fmt.Sprintf("dataset: bad shape boardSize=%v inputPlanes=%v", boardSize, inputPlanes))
	}
	var featureSize = boardSize * boardSize * inputPlanes
	var moveSize = boardSize * boardSize
	if len(posFeatures)%featureSize != 0 || len(nextMoves)%moveSize != 0 ||
		len(posFeatures)/featureSize != len(nextMoves)/moveSize {
		panic(fmt.Sprintf("dataset: didn't pass in same number of pos_features (%v values) and next_moves (%v values)",
			len(posFeatures), len(nextMoves)))
	}
	return &Dataset{
		posFeatures: posFeatures,
		nextMoves:   nextMoves,
		results:     results,
		isTest:      isTest,
		dataSize:    len(posFeatures) / featureSize,
		boardSize:   boardSize,
		inputPlanes: inputPlanes,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (d *Dataset) PosFeatures() []float32 { return d.posFeatures }
func (d *Dataset) NextMoves() []int16     { return d.nextMoves }
func (d *Dataset) Results() []float32     { return d.results }
func (d *Dataset) IsTest() bool           { return d.isTest }
func (d *Dataset) DataSize() int          { return d.dataSize }
func (d *Dataset) BoardSize() int         { return d.boardSize }
func (d *Dataset) InputPlanes() int       { return d.inputPlanes }

func (d *Dataset) SetRand(rnd *rand.Rand) {
	d.rnd = rnd
}

func (d *Dataset) featureSize() int {
	return d.boardSize * d.boardSize * d.inputPlanes
}

func (d *Dataset) moveSize() int {
	return d.boardSize * d.boardSize
}

// GetBatch returns the next batchSize examples. When the current epoch has
// fewer than batchSize examples left, the whole dataset is reshuffled first.
// The returned slices alias dataset storage until the next reshuffle.
func (d *Dataset) GetBatch(batchSize int) ([]float32, []int16) {
	if batchSize <= 0 || batchSize >= d.dataSize {
		panic(fmt.Sprintf("dataset: batch size %v must be in (0, %v)", batchSize, d.dataSize))
	}
	if d.indexWithinEpoch+batchSize > d.dataSize {
		d.shuffle()
		d.indexWithinEpoch = 0
	}
	var start = d.indexWithinEpoch
	var end = start + batchSize
	d.indexWithinEpoch = end
	var fs, ms = d.featureSize(), d.moveSize()
	return d.posFeatures[start*fs : end*fs], d.nextMoves[start*ms : end*ms]
}

func (d *Dataset) shuffle() {
	var perm = d.rnd.Perm(d.dataSize)
	var fs, ms = d.featureSize(), d.moveSize()
	var posFeatures = make([]float32, len(d.posFeatures))
	var nextMoves = make([]int16, len(d.nextMoves))
	for i, j := range perm {
		copy(posFeatures[i*fs:(i+1)*fs], d.posFeatures[j*fs:(j+1)*fs])
		copy(nextMoves[i*ms:(i+1)*ms], d.nextMoves[j*ms:(j+1)*ms])
	}
	d.posFeatures = posFeatures
	d.nextMoves = nextMoves
}

// FromPositionsWithContext extracts features of every position and one-hot encodes the next moves.
// With threads <= 1 extraction runs on the calling goroutine.
// featureProvider must be safe for concurrent use when threads > 1.
func FromPositionsWithContext(
	ctx context.Context,
	positions []domain.PositionWithContext,
	isTest bool,
	featureProvider features.IFeatureProvider,
	threads int,
) (*Dataset, error) {
	var planes = featureProvider.Planes()
	var featureSize = common.NumPoints * planes
	var posFeatures = make([]float32, len(positions)*featureSize)

	var err = extractFeatures(ctx, positions, featureProvider, posFeatures, threads)
	if err != nil {
		return nil, err
	}

	var moves = make([]int, len(positions))
	var results = make([]float32, len(positions))
	for i := range positions {
		moves[i] = common.FlattenCoords(positions[i].NextMove)
		results[i] = positions[i].Result()
	}
	nextMoves, err := MakeOneHot(moves, common.NumPoints)
	if err != nil {
		return nil, err
	}

	return NewDataset(posFeatures, nextMoves, results, common.BoardSize, planes, isTest), nil
}

func extractFeatures(
	ctx context.Context,
	positions []domain.PositionWithContext,
	featureProvider features.IFeatureProvider,
	output []float32,
	threads int,
) error {
	var featureSize = common.NumPoints * featureProvider.Planes()
	if threads <= 1 {
		for i := range positions {
			if err := ctx.Err(); err != nil {
				return err
			}
			featureProvider.ComputeFeatures(&positions[i].Position,
				output[i*featureSize:(i+1)*featureSize])
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i := range positions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			featureProvider.ComputeFeatures(&positions[i].Position,
				output[i*featureSize:(i+1)*featureSize])
			return nil
		})
	}
	return g.Wait()
}
