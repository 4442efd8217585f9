package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"ecoleta/internal/config"
	"ecoleta/internal/geocache"
	"ecoleta/internal/ibge"
	"ecoleta/internal/telemetry"
	"ecoleta/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

var _ ibge.Cache = (*geocache.Store)(nil)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Anything written to stderr would corrupt the alt screen.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "ecoleta")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("telemetry: shutdown: %v", err)
		}
	}()

	opts := []ibge.Option{ibge.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout})}
	if cfg.CachePath != "" {
		store, err := geocache.Open(cfg.CachePath, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer store.Close()
		if n, err := store.Purge(ctx); err != nil {
			log.Printf("geocache: purge: %v", err)
		} else if n > 0 {
			log.Printf("geocache: purged %d expired entries", n)
		}
		opts = append(opts, ibge.WithCache(store))
	}
	client := ibge.NewClient(cfg.IBGEBaseURL, opts...)
	log.Printf("ibge: using %s", client.BaseURL())

	model := ui.NewAppModel(client).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
