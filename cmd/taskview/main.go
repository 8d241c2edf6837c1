package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/taskview/internal/client"
	"github.com/sandeepkv93/taskview/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	fetcher, err := client.New(cfg.Endpoint, cfg.FetchTimeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "taskview failed: %v\n", err)
		os.Exit(1)
	}

	program := tea.NewProgram(update.NewModelWithFetcher(fetcher, cfg.Endpoint))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskview failed: %v\n", err)
		os.Exit(1)
	}
}
