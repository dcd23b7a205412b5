package dataset

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Chunk layout, gzip compressed, native byte order:
//
//	int32 data_size
//	int32 board_size
//	int32 input_planes
//	bool  is_test
//	float32[data_size*board_size*board_size*input_planes]
//	int16[data_size*board_size*board_size]
const ChunkHeaderSize = 3*4 + 1

// A 100000 position test chunk of 19x19x13 planes needs ~4.7e8 floats.
const (
	maxChunkValues = 1 << 30
	maxBoardSize   = 52
)

var errInvalidHeader = errors.New("invalid chunk header")

type ChunkHeader struct {
	DataSize    int32
	BoardSize   int32
	InputPlanes int32
	IsTest      bool
}

func (h *ChunkHeader) encode(buf []byte) {
	binary.NativeEndian.PutUint32(buf[0:], uint32(h.DataSize))
	binary.NativeEndian.PutUint32(buf[4:], uint32(h.BoardSize))
	binary.NativeEndian.PutUint32(buf[8:], uint32(h.InputPlanes))
	if h.IsTest {
		buf[12] = 1
	} else {
		buf[12] = 0
	}
}

func decodeChunkHeader(buf []byte) ChunkHeader {
	return ChunkHeader{
		DataSize:    int32(binary.NativeEndian.Uint32(buf[0:])),
		BoardSize:   int32(binary.NativeEndian.Uint32(buf[4:])),
		InputPlanes: int32(binary.NativeEndian.Uint32(buf[8:])),
		IsTest:      buf[12] != 0,
	}
}

func (h *ChunkHeader) validate() error {
	if h.DataSize < 0 || h.BoardSize <= 0 || h.BoardSize > maxBoardSize || h.InputPlanes <= 0 {
		return fmt.Errorf("%w: %+v", errInvalidHeader, *h)
	}
	var featureCount = int64(h.DataSize) * int64(h.BoardSize) * int64(h.BoardSize) * int64(h.InputPlanes)
	if featureCount > maxChunkValues {
		return fmt.Errorf("%w: payload too large %+v", errInvalidHeader, *h)
	}
	return nil
}

func (d *Dataset) header() ChunkHeader {
	return ChunkHeader{
		DataSize:    int32(d.dataSize),
		BoardSize:   int32(d.boardSize),
		InputPlanes: int32(d.inputPlanes),
		IsTest:      d.isTest,
	}
}

// Write serializes the dataset as a compressed chunk. Results are not stored.
func (d *Dataset) Write(w io.Writer) error {
	var zw = gzip.NewWriter(w)
	if err := d.writePayload(zw); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func (d *Dataset) writePayload(zw io.Writer) error {
	var bw = bufio.NewWriterSize(zw, 1<<16)

	var headerBytes [ChunkHeaderSize]byte
	var h = d.header()
	h.encode(headerBytes[:])
	if _, err := bw.Write(headerBytes[:]); err != nil {
		return err
	}

	var buf [4]byte
	for _, v := range d.posFeatures {
		binary.NativeEndian.PutUint32(buf[:], math.Float32bits(v))
		if _, err := bw.Write(buf[:]); err != nil {
			return err
		}
	}
	for _, v := range d.nextMoves {
		binary.NativeEndian.PutUint16(buf[:2], uint16(v))
		if _, err := bw.Write(buf[:2]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func (d *Dataset) WriteFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := d.Write(file); err != nil {
		file.Close()
		return fmt.Errorf("write chunk %v: %w", filename, err)
	}
	return file.Close()
}

// Read decodes a chunk written by Write. The returned dataset has empty results.
func Read(r io.Reader) (*Dataset, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	var br = bufio.NewReaderSize(zr, 1<<16)

	var headerBytes [ChunkHeaderSize]byte
	if _, err := io.ReadFull(br, headerBytes[:]); err != nil {
		return nil, fmt.Errorf("read chunk header: %w", err)
	}
	var h = decodeChunkHeader(headerBytes[:])
	if err := h.validate(); err != nil {
		return nil, err
	}

	var moveSize = int(h.DataSize) * int(h.BoardSize) * int(h.BoardSize)
	var featureSize = moveSize * int(h.InputPlanes)

	var buf [4]byte
	var posFeatures = make([]float32, featureSize)
	for i := range posFeatures {
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return nil, fmt.Errorf("read pos_features: %w", unexpectedEOF(err))
		}
		posFeatures[i] = math.Float32frombits(binary.NativeEndian.Uint32(buf[:]))
	}
	var nextMoves = make([]int16, moveSize)
	for i := range nextMoves {
		if _, err := io.ReadFull(br, buf[:2]); err != nil {
			return nil, fmt.Errorf("read next_moves: %w", unexpectedEOF(err))
		}
		nextMoves[i] = int16(binary.NativeEndian.Uint16(buf[:2]))
	}

	return NewDataset(posFeatures, nextMoves, []float32{}, int(h.BoardSize), int(h.InputPlanes), h.IsTest), nil
}

func ReadFile(filename string) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	d, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read chunk %v: %w", filename, err)
	}
	return d, nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
