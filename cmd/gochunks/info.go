package main

import (
	"fmt"
	"io"

	"github.com/ChizhovVadim/GoChunks/internal/dataset"
)

type ChunkInfo struct {
	DataSize    int
	BoardSize   int
	InputPlanes int
	IsTest      bool
	BadLabels   int
}

func loadChunkInfo(filepath string) (ChunkInfo, error) {
	d, err := dataset.ReadFile(filepath)
	if err != nil {
		return ChunkInfo{}, err
	}
	return chunkInfo(d), nil
}

// chunkInfo counts label rows that are not exactly one-hot.
func chunkInfo(d *dataset.Dataset) ChunkInfo {
	var info = ChunkInfo{
		DataSize:    d.DataSize(),
		BoardSize:   d.BoardSize(),
		InputPlanes: d.InputPlanes(),
		IsTest:      d.IsTest(),
	}
	var rowSize = d.BoardSize() * d.BoardSize()
	var moves = d.NextMoves()
	for i := 0; i < d.DataSize(); i++ {
		var ones, others int
		for _, v := range moves[i*rowSize : (i+1)*rowSize] {
			switch v {
			case 0:
			case 1:
				ones++
			default:
				others++
			}
		}
		if ones != 1 || others != 0 {
			info.BadLabels++
		}
	}
	return info
}

func printChunkInfo(w io.Writer, filepath string, info ChunkInfo) {
	fmt.Fprintf(w, "%v\n", filepath)
	fmt.Fprintf(w, "data_size:    %v\n", info.DataSize)
	fmt.Fprintf(w, "board_size:   %v\n", info.BoardSize)
	fmt.Fprintf(w, "input_planes: %v\n", info.InputPlanes)
	fmt.Fprintf(w, "is_test:      %v\n", info.IsTest)
	fmt.Fprintf(w, "bad labels:   %v\n", info.BadLabels)
}
