package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/StoreStation/biomegen/internal/cache"
	"github.com/StoreStation/biomegen/internal/config"
	"github.com/StoreStation/biomegen/internal/httpapi"
)

var serveAddress string

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the region HTTP API",
		RunE:  runServeCommand,
	}

	serveCmd.Flags().StringVar(&serveAddress, "address", "", "address to listen on (overrides the config file)")

	rootCmd.AddCommand(serveCmd)
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("address") {
		serveAddress = cfg.Address
	}

	var store *cache.Store
	if cfg.CacheDir != "" {
		store, err = cache.Open(cfg.CacheDir)
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		defer store.Close()
	}

	srv := &http.Server{Addr: serveAddress, Handler: httpapi.New(store, cfg.CORSOrigins, cfg.MetricsEnabled).Mux()}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("biomegen serving on %s", serveAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Shutting down (received signal: %v)...", sig)
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	}

	return srv.Close()
}
