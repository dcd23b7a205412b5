package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ChizhovVadim/GoChunks/internal/dataset"
	"github.com/ChizhovVadim/GoChunks/internal/features"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

type Settings struct {
	InputDirs    []string
	ProcessedDir string
	Threads      int
}

// newSettings reads process parameters. Feature extraction is sequential unless -threads is given.
func newSettings(params *CommandArgs) Settings {
	return Settings{
		InputDirs:    mapPaths(params.GetList("input", []string{"~/go/sgf"})),
		ProcessedDir: mapPath(params.GetString("output", "processed_data")),
		Threads:      max(1, params.GetInt("threads", 1)),
	}
}

func run() error {
	var cli = NewCli(os.Args)
	cli.AddCommand("process", func() error {
		var settings = newSettings(cli.Params())
		log.Printf("%+v", settings)
		if len(settings.InputDirs) == 0 {
			return fmt.Errorf("at least one input folder is expected")
		}
		var chunkService = &dataset.ChunkService{
			FeatureProvider: features.DefaultFeatures,
			Threads:         settings.Threads,
		}
		return chunkService.ProcessRawData(context.Background(), settings.InputDirs, settings.ProcessedDir)
	})
	cli.AddCommand("info", func() error {
		var path = mapPath(cli.Params().GetString("chunk", ""))
		if path == "" {
			return fmt.Errorf("-chunk is required")
		}
		info, err := loadChunkInfo(path)
		if err != nil {
			return err
		}
		printChunkInfo(os.Stdout, path, info)
		return nil
	})
	return cli.Execute()
}
