package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/StoreStation/biomegen/internal/config"
	"github.com/StoreStation/biomegen/internal/imageio"
	"github.com/StoreStation/biomegen/pkg/region"
	"github.com/StoreStation/biomegen/pkg/seed"
)

const mapChunkSize = 16

var (
	mapSeed     string
	mapType     string
	mapX        int32
	mapZ        int32
	mapWidth    uint32
	mapDepth    uint32
	mapUseIndex bool
	mapOutfile  string
)

func init() {
	mapCmd := &cobra.Command{
		Use:   "map",
		Short: "Render a region to a PNG file",
		RunE:  runMapCommand,
	}

	mapCmd.Flags().StringVar(&mapSeed, "seed", "0", "world seed (decimal integer or free-form string)")
	mapCmd.Flags().StringVar(&mapType, "type", "DEFAULT", "world type (DEFAULT, FLAT, LARGE_BIOME, DEFAULT_1_1)")
	mapCmd.Flags().Int32Var(&mapX, "x", 0, "region origin x, in world blocks")
	mapCmd.Flags().Int32Var(&mapZ, "z", 0, "region origin z, in world blocks")
	mapCmd.Flags().Uint32Var(&mapWidth, "width", 256, "region width, in world blocks")
	mapCmd.Flags().Uint32Var(&mapDepth, "depth", 256, "region depth, in world blocks")
	mapCmd.Flags().BoolVar(&mapUseIndex, "index", false, "render the coarser climate/temperature layer instead of the block layer")
	mapCmd.Flags().StringVar(&mapOutfile, "out", "map.png", "output PNG path")

	rootCmd.AddCommand(mapCmd)
}

func runMapCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("seed") {
		mapSeed = cfg.WorldSeed
	}
	if !cmd.Flags().Changed("type") {
		mapType = cfg.WorldType
	}

	worldSeed := seed.Parse(mapSeed)
	worldType, err := seed.ParseWorldType(mapType)
	if err != nil {
		return fmt.Errorf("map: %w", err)
	}

	start := time.Now()

	img, err := region.Generate(region.Request{
		Seed:          worldSeed,
		WorldType:     worldType,
		OriginX:       mapX,
		OriginZ:       mapZ,
		Width:         mapWidth,
		Depth:         mapDepth,
		UseIndexLayer: mapUseIndex,
	})
	if err != nil {
		return fmt.Errorf("map: generate region: %w", err)
	}

	f, err := os.Create(mapOutfile)
	if err != nil {
		return fmt.Errorf("map: create %s: %w", mapOutfile, err)
	}
	defer f.Close()

	if err := imageio.EncodePNG(f, img); err != nil {
		return fmt.Errorf("map: encode PNG: %w", err)
	}

	chunks := (img.Width / mapChunkSize) * (img.Depth / mapChunkSize)
	seconds := int(time.Since(start).Seconds()) + 1
	log.Printf("Generated %dx%d map (%d chunks) in %d second(s) -> %s", img.Width, img.Depth, chunks, seconds, mapOutfile)
	return nil
}
