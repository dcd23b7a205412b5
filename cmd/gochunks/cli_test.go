package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChizhovVadim/GoChunks/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandArgs(t *testing.T) {
	var args = NewCommandArgs([]string{"gochunks", "process", "-input", "a, b,,c", "-threads", "4", "-output", "out"})
	assert.Equal(t, "process", args.CommandName())
	assert.Equal(t, []string{"a", "b", "c"}, args.GetList("input", nil))
	assert.Equal(t, 4, args.GetInt("threads", 1))
	assert.Equal(t, "out", args.GetString("output", ""))
	assert.Equal(t, 7, args.GetInt("missing", 7))
	assert.Equal(t, []string{"x"}, args.GetList("missing", []string{"x"}))
}

func TestCliExecute(t *testing.T) {
	var errDone = errors.New("done")
	var cli = NewCli([]string{"gochunks", "info", "-chunk", "x"})
	cli.AddCommand("info", func() error { return errDone })
	require.ErrorIs(t, cli.Execute(), errDone)

	var unknown = NewCli([]string{"gochunks", "train"})
	unknown.AddCommand("info", func() error { return nil })
	require.Error(t, unknown.Execute())
}

func TestChunkInfo(t *testing.T) {
	onehot, err := dataset.MakeOneHot([]int{0, 3}, 4)
	require.NoError(t, err)
	onehot[4] = 1 // second row now has two ones
	var d = dataset.NewDataset(make([]float32, 2*4), onehot, nil, 2, 1, true)

	var filename = filepath.Join(t.TempDir(), dataset.TestChunkName)
	require.NoError(t, d.WriteFile(filename))

	info, err := loadChunkInfo(filename)
	require.NoError(t, err)
	assert.Equal(t, ChunkInfo{DataSize: 2, BoardSize: 2, InputPlanes: 1, IsTest: true, BadLabels: 1}, info)

	var buf bytes.Buffer
	printChunkInfo(&buf, filename, info)
	assert.Contains(t, buf.String(), "data_size:    2")
}

func TestSettingsSequentialByDefault(t *testing.T) {
	var settings = newSettings(NewCommandArgs([]string{"gochunks", "process", "-input", "a,b"}))
	assert.Equal(t, 1, settings.Threads)
	assert.Equal(t, []string{"a", "b"}, settings.InputDirs)
	assert.Equal(t, "processed_data", settings.ProcessedDir)

	settings = newSettings(NewCommandArgs([]string{"gochunks", "process", "-threads", "4"}))
	assert.Equal(t, 4, settings.Threads)
	settings = newSettings(NewCommandArgs([]string{"gochunks", "process", "-threads", "0"}))
	assert.Equal(t, 1, settings.Threads)
}

func TestMapPath(t *testing.T) {
	assert.Equal(t, "./out", mapPath("./out"))
	assert.Equal(t, "out", mapPath("out"))
	assert.Equal(t, "/abs/out", mapPath("/abs/out"))
	var home = mapPath("~/sgf")
	assert.False(t, strings.HasPrefix(home, "~"))
	assert.True(t, strings.HasSuffix(home, "sgf"))
}
