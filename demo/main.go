// Command demo is a terminal control panel for the sneaker blog API: it shows recent
// runs and lets an operator preview generated posts or trigger a publish run.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sneakerblog/demo/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	// Same .env as the server, so PORT points the panel at the local API
	_ = godotenv.Load()

	defaultURL := "http://localhost:10000"
	if port := os.Getenv("PORT"); port != "" {
		defaultURL = "http://localhost:" + port
	}

	apiURL := flag.String("url", defaultURL, "Base URL of the sneaker blog API (serves /api/status)")
	refresh := flag.Duration("refresh", time.Second, "How often to poll /api/status for run progress")
	fullscreen := flag.Bool("fullscreen", false, "Draw the panel on the alternate screen")
	flag.Parse()

	var opts []tea.ProgramOption
	if *fullscreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(tui.NewModel(*apiURL, *refresh), opts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Control panel exited: %v\n", err)
		os.Exit(1)
	}
}
