package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/user-directory/internal/browse"
	"github.com/DjordjeVuckovic/user-directory/internal/debounce"
	"github.com/DjordjeVuckovic/user-directory/pkg/config/env"
)

var (
	addr       string
	quiescence time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "user_browse",
	Short: "Browse the user directory from the terminal",
	Long: `user_browse is a terminal client for the user directory API.
Typing searches by name once input settles; the arrow keys page through results.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := browse.NewClient(addr)
		if err != nil {
			return err
		}

		debouncer := debounce.New(quiescence)
		defer debouncer.Stop()

		model := browse.NewModel(client, debouncer)
		p := tea.NewProgram(model)
		model.SetSender(p.Send)

		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", env.StringOr("USER_API_ADDR", "http://localhost:8080"), "user directory API address")
	rootCmd.Flags().DurationVar(&quiescence, "quiescence", debounce.DefaultQuiescence, "idle time before a search is sent")
}

func main() {
	// Logs would corrupt the TUI.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
