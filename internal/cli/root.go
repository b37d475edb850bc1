// Package cli is the process entry: flag parsing and application wiring.
package cli

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ytget/ws-tester/internal/config"
	"github.com/ytget/ws-tester/internal/logger"
	"github.com/ytget/ws-tester/internal/socket"
	"github.com/ytget/ws-tester/internal/ui"
)

const (
	AppID   = "com.ytget.ws-tester"
	AppName = "WebSocket Tester"

	WindowWidth  = 800
	WindowHeight = 600
)

// Options holds the command line flags
type Options struct {
	LogLevel string
	URL      string
	// Slot is 1-based; 0 keeps the last used slot
	Slot int

	level zerolog.Level
}

// RunFunc starts the application with parsed options
type RunFunc func(opts Options, version string) error

// NewRootCommand creates the ws-tester command. run is invoked after the
// flags have been validated.
func NewRootCommand(version string, run RunFunc) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:     "ws-tester",
		Short:   "Desktop tool for manually testing WebSocket endpoints",
		Long:    "ws-tester connects to a ws:// or wss:// endpoint, sends text frames and logs\nconnection state changes and received messages.",
		Version: version,
		Args:    cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, version)
		},
	}

	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.URL, "url", "", "Prefill the URL field (not saved to a slot)")
	cmd.Flags().IntVar(&opts.Slot, "slot", 0, fmt.Sprintf("Initial slot 1-%d (0 = last used)", config.SlotCount))

	return cmd
}

func (o *Options) validate() error {
	level, err := logger.ParseLevel(o.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.LogLevel, err)
	}
	o.level = level

	if o.Slot < 0 || o.Slot > config.SlotCount {
		return fmt.Errorf("invalid --slot %d: must be between 0 and %d", o.Slot, config.SlotCount)
	}
	return nil
}

// Execute runs the root command and exits on error
func Execute(version string) {
	if err := NewRootCommand(version, Run).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run builds the application and blocks until the window is closed
func Run(opts Options, version string) error {
	log := logger.NewConsole(opts.level)
	log.Info().Str("version", version).Msg("ws-tester starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	client := socket.NewClient(log)
	defer client.Shutdown()

	root := ui.NewRootUI(myWindow, myApp, client, log)
	if opts.Slot > 0 {
		root.SelectSlot(opts.Slot - 1)
	}
	if opts.URL != "" {
		root.SetURL(opts.URL)
	}

	myWindow.ShowAndRun()

	if err := client.Close(); err != nil {
		log.Warn().Err(err).Msg("close on exit failed")
	}
	log.Info().Msg("ws-tester stopped")
	return nil
}
