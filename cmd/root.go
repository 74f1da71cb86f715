package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"venndrop/audio"
	"venndrop/board"
	"venndrop/config"
	"venndrop/ui"
)

var (
	seedFlag    int64
	noSoundFlag bool
	debugFlag   bool
)

// RootCmd is the base command; running it without a subcommand plays
// the game.
var RootCmd = &cobra.Command{
	Use:   "venndrop",
	Short: "Terminal Venn-diagram deduction puzzle",
	Long: `venndrop is a mouse-driven terminal puzzle. Each round hides one
answer card per circle. Drag shapes from the tray into the diagram:
the overlap turns green for any shape sharing at least one attribute
with each hidden answer, while a circle's own region only turns green
for the exact hidden card.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay()
	},
}

func init() {
	RootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "fix the hidden-answer roll (0 = random)")
	RootCmd.PersistentFlags().BoolVar(&noSoundFlag, "no-sound", false, "disable feedback tones")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write a debug log under the XDG state dir")
	RootCmd.AddCommand(rulesCmd)
}

func runPlay() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	// Flags override file values.
	if seedFlag != 0 {
		cfg.Seed = seedFlag
	}
	if noSoundFlag {
		cfg.Sound = false
	}
	if debugFlag {
		cfg.Debug = true
	}

	logger, err := buildLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	sound, err := audio.NewPlayer(cfg.Sound)
	if err != nil {
		// Non-fatal, the game runs silent.
		logger.Warn("audio initialization failed", zap.Error(err))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	spacing := board.Spacing{
		MaxRadius: cfg.Radius,
		MarginX:   cfg.MarginX,
		MarginY:   cfg.MarginY,
	}
	app := ui.New(screen, cfg.Seed, spacing, sound, logger)

	// Restore the terminal before printing a crash, so the stack trace
	// lands on a sane screen.
	defer func() {
		if r := recover(); r != nil {
			app.Finish()
			fmt.Fprintf(os.Stderr, "venndrop crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer app.Finish()

	app.Run()
	return nil
}

// buildLogger returns a nop logger unless debug is on, in which case it
// writes to the XDG state directory.
func buildLogger(debugOn bool) (*zap.Logger, error) {
	if !debugOn {
		return zap.NewNop(), nil
	}
	logPath := config.GetLogFilePath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zcfg.OutputPaths = []string{logPath}
	zcfg.ErrorOutputPaths = []string{logPath}
	return zcfg.Build()
}
