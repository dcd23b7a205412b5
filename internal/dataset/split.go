package dataset

const (
	// Number of data points to store in a chunk on disk
	ChunkSize        = 4096
	DesiredTestSize  = 100_000
	PositionsPerGame = 200
)

// SplitTestTraining returns one test group and a lazy stream of training groups.
// Small corpora are read into memory and split 1/3 test, 2/3 training in a single group.
// Large corpora take the first DesiredTestSize items as test and stream the rest in ChunkSize groups.
func SplitTestTraining[T any](items Iterator[T], estNumPositions int) ([]T, Iterator[[]T], error) {
	if estNumPositions < 2*DesiredTestSize {
		var all, err = Collect(items)
		if err != nil {
			return nil, nil, err
		}
		var testSize = len(all) / 3
		return all[:testSize], FromSlice([][]T{all[testSize:]}), nil
	}
	var testChunk, err = TakeN(DesiredTestSize, items)
	if err != nil {
		return nil, nil, err
	}
	return testChunk, IterChunks(ChunkSize, items), nil
}
