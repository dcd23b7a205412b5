package dataset

import (
	"errors"
	"io"
)

// Iterator is a pull-based single-pass stream. Next returns io.EOF when exhausted.
type Iterator[T any] interface {
	Next() (T, error)
}

type sliceIterator[T any] struct {
	items []T
	index int
}

func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items: items}
}

func (it *sliceIterator[T]) Next() (T, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, io.EOF
	}
	var item = it.items[it.index]
	it.index++
	return item, nil
}

// TakeN reads up to n items. A short result is not an error.
func TakeN[T any](n int, it Iterator[T]) ([]T, error) {
	var result = make([]T, 0, min(n, 4096))
	for len(result) < n {
		var item, err = it.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func Collect[T any](it Iterator[T]) ([]T, error) {
	var result []T
	for {
		var item, err = it.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return result, nil
			}
			return nil, err
		}
		result = append(result, item)
	}
}

type chunkIterator[T any] struct {
	source Iterator[T]
	size   int
	done   bool
}

// IterChunks groups items into consecutive slices of at most size items.
// An exactly divisible stream never yields a trailing empty group.
func IterChunks[T any](size int, it Iterator[T]) Iterator[[]T] {
	return &chunkIterator[T]{source: it, size: size}
}

func (it *chunkIterator[T]) Next() ([]T, error) {
	if it.done {
		return nil, io.EOF
	}
	var chunk, err = TakeN(it.size, it.source)
	if err != nil {
		return nil, err
	}
	if len(chunk) < it.size {
		it.done = true
	}
	if len(chunk) == 0 {
		return nil, io.EOF
	}
	return chunk, nil
}

type chainIterator[S, T any] struct {
	sources []S
	open    func(S) (Iterator[T], error)
	current Iterator[T]
}

// Chain concatenates the streams produced by open, opening each source only
// after the previous one is exhausted.
func Chain[S, T any](sources []S, open func(S) (Iterator[T], error)) Iterator[T] {
	return &chainIterator[S, T]{sources: sources, open: open}
}

func (it *chainIterator[S, T]) Next() (T, error) {
	var zero T
	for {
		if it.current == nil {
			if len(it.sources) == 0 {
				return zero, io.EOF
			}
			var next, err = it.open(it.sources[0])
			if err != nil {
				return zero, err
			}
			it.sources = it.sources[1:]
			it.current = next
		}
		var item, err = it.current.Next()
		if err == nil {
			return item, nil
		}
		if !errors.Is(err, io.EOF) {
			return zero, err
		}
		it.current = nil
	}
}

type filterIterator[T any] struct {
	source Iterator[T]
	pred   func(*T) bool
}

func Filter[T any](it Iterator[T], pred func(*T) bool) Iterator[T] {
	return &filterIterator[T]{source: it, pred: pred}
}

func (it *filterIterator[T]) Next() (T, error) {
	for {
		var item, err = it.source.Next()
		if err != nil {
			return item, err
		}
		if it.pred(&item) {
			return item, nil
		}
	}
}
