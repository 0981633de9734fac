package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"workspace-grid/internal/app"
	"workspace-grid/internal/grid"
	"workspace-grid/internal/overlay"
	"workspace-grid/internal/wm"
	"workspace-grid/pkg/config"
	"workspace-grid/pkg/logger"
	"workspace-grid/pkg/notify"
)

const version = "1.0.0"

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "workspace-grid <move|switch|display> <up|down|left|right|next|N>",
	Short: "Navigate i3 workspaces as a 3x3 grid",
	Long: `workspace-grid moves between (or moves the focused container across)
workspaces 1-9 laid out as a 3x3 grid, then flashes a small indicator of the
occupied and focused workspaces.

The second argument is either a workspace number or a direction. It is
required in display mode too, but ignored. Flags go before the mode, so
"workspace-grid switch -1" passes -1 as a workspace number.`,
	Version:       version,
	Args:          validateArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	// Stop flag parsing at the mode so negative workspace numbers stay positional.
	rootCmd.Flags().SetInterspersed(false)
}

// validateArgs rejects every usage error before any IPC client exists.
func validateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", app.ErrUsage, err)
	}
	if _, err := grid.ParseMode(args[0]); err != nil {
		return fmt.Errorf("%w: %w", app.ErrUsage, err)
	}
	return nil
}

// runGridFunc is replaced in tests.
var runGridFunc = runGrid

func run(cmd *cobra.Command, args []string) error {
	// Setup logging level
	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}

	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Debug("Starting workspace-grid",
		"version", version,
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"args", args)

	cfg, err := config.FindConfig(configPath, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", configPath)
		return err
	}
	notifier := notify.NewNotifyService(cfg.GetNotifyCommand(), log)

	if err := runGridFunc(cfg, log, args[0], args[1]); err != nil {
		log.Error("workspace-grid failed", err, "mode", args[0], "move", args[1])
		if nerr := notifier.Show(err.Error(), notify.Error); nerr != nil {
			log.Warn("Failed to show notification", "error", nerr.Error())
		}
		return err
	}
	return nil
}

func runGrid(cfg *config.Config, log *logger.Logger, mode, move string) error {
	client, err := wm.NewI3(cfg.GetIPCCommand(), log)
	if err != nil {
		return err
	}

	renderer, err := overlay.NewRenderer(cfg.GetOverlay(), log)
	if err != nil {
		return err
	}

	return app.NewWorkspaceGrid(client, renderer, log).Run(mode, move)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, app.ErrUsage) {
			fmt.Fprintln(os.Stderr, rootCmd.UsageString())
			os.Exit(2)
		}
		os.Exit(1)
	}
}
