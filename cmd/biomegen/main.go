package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "biomegen",
	Short: "Deterministic biome-map generator",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("biomegen: %v", err)
		os.Exit(1)
	}
}
