package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okampo/chatkit/internal/config"
	"github.com/okampo/chatkit/internal/tui"
	"github.com/okampo/chatkit/internal/update"
)

var version = "dev"

func main() {
	var noUpdateCheck bool
	filteredArgs := []string{os.Args[0]}
	for i := 1; i < len(os.Args); i++ {
		if os.Args[i] == "--no-update-check" {
			noUpdateCheck = true
		} else {
			filteredArgs = append(filteredArgs, os.Args[i])
		}
	}
	os.Args = filteredArgs

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v":
			fmt.Printf("chatkit %s\n", version)
			return
		case "--help", "-h":
			printHelp()
			return
		case "--update":
			runUpdate()
			return
		}
	}

	if err := run(noUpdateCheck); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(noUpdateCheck bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	chatStyle, err := cfg.ChatViewStyle()
	if err != nil {
		return fmt.Errorf("assembling chat style: %w", err)
	}

	model := tui.New(tui.Options{
		ChatStyle:   chatStyle,
		Tokens:      cfg.Tokens(),
		Version:     version,
		UpdateCheck: cfg.Update.CheckOnStart && !noUpdateCheck,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runUpdate() {
	if version == "dev" {
		fmt.Println("Auto-update is not available for development builds.")
		return
	}
	fmt.Println("Checking for updates...")
	res, err := update.Apply(context.Background(), version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		os.Exit(1)
	}
	if res.Applied {
		fmt.Printf("Updated to v%s. Restart chatkit to use the new version.\n", res.LatestVersion)
	} else {
		fmt.Println("Already running the latest version.")
	}
}

func printHelp() {
	fmt.Printf(`chatkit %s — chat input widget demo

Usage:
  chatkit                    Start the demo TUI
  chatkit --version          Print version and exit
  chatkit --help             Show this help
  chatkit --update           Update to the latest version
  chatkit --no-update-check  Skip the background update check

Slash commands (in TUI):
  /help                Show available commands
  /quit, /bye, /exit   Exit the demo
  /clear               Clear the conversation display
  /copy                Copy the last reply to the clipboard
  /state [<name>]      Pin the input button to a state
  /update              Check for updates and upgrade

Configuration:
  Config is stored in %s
  Override with CHATKIT_CONFIG_DIR environment variable.

  config.yaml example:
    theme:
      progress_color: "#10B981"
    buttons:
      placement: prefix
      custom_icons:
        submit: "🚀"
    update:
      check_on_start: true
`, version, config.Dir())
}
