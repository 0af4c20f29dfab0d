package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"medsearch/internal/api"
	"medsearch/internal/config"
	"medsearch/internal/logger"
	"medsearch/internal/ui"
)

func main() {
	var apiURL string
	var configPath string
	flag.StringVar(&apiURL, "api", "", "search backend URL (overrides config and environment)")
	flag.StringVar(&configPath, "config", "", "path to a config file")
	flag.Parse()

	// A .env next to the binary may carry MEDSEARCH_API_URL
	_ = godotenv.Load()

	configSvc := config.NewConfigService()
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	} else {
		cfg, err = configSvc.Load()
		if err != nil {
			// Fall back to defaults; the UI still works
			cfg = config.DefaultConfig()
		}
	}

	// The TUI owns the terminal, so logs go to a file
	log := logger.New("medsearch.log", cfg.LogLevel)

	baseURL := apiURL
	if baseURL == "" {
		baseURL = config.ResolveAPIURL(cfg)
	}
	log.Info().Str("api_url", baseURL).Msg("starting medsearch")

	client := api.NewClient(baseURL, api.WithTimeout(time.Duration(cfg.TimeoutSec)*time.Second))

	uiModel := ui.NewModel(cfg, client, log)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited with error")
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
