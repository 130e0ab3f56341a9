package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"breaktimer/logging"
	"breaktimer/schedule"
	"breaktimer/sound"
	"breaktimer/storage"
	"breaktimer/ui"
	"breaktimer/version"
)

const appID = "io.github.breaktimer"

type options struct {
	showVersion bool
	debug       bool
	chime       bool
	configPath  string
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	flags := flag.NewFlagSet("breaktimer", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Relax yourself away from computer.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: breaktimer [flags]")
		flags.PrintDefaults()
	}

	flags.BoolVar(&opts.showVersion, "version", false, "Print program, Go and Fyne versions and exit.")
	flags.BoolVar(&opts.showVersion, "v", false, "Shorthand for --version.")
	flags.BoolVar(&opts.debug, "debug", false, "Print debug information on the console.")
	flags.BoolVar(&opts.debug, "d", false, "Shorthand for --debug.")
	flags.BoolVar(&opts.chime, "chime", false, "Play a short chime when a break starts.")
	flags.StringVar(&opts.configPath, "config", "", "Settings file path (default: breaktimer.json next to the executable).")

	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if flags.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Banner())
		return 0
	}

	logger := logging.New(logging.Options{Debug: opts.debug, Writer: stderr})
	logStartup(logger)

	if err := runGUI(opts, logger); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// logStartup records the versions the program runs with.
func logStartup(logger *slog.Logger) {
	logger.Debug("starting breaktimer", "version", version.Version, "go", runtime.Version(), "fyne", version.FyneVersion())
}

// runGUI starts the windowing system. Fyne panics when no display driver can
// be initialised; that is the one fatal error.
func runGUI(opts options, logger *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cannot start the windowing system: %v", r)
		}
	}()

	if err := ui.SetTaskbarIdentity(); err != nil {
		logger.Warn("taskbar identity not set", "err", err)
	}

	var chime ui.Chimer
	if opts.chime {
		chime = sound.NewChime(logger)
	}

	mainWindow := ui.NewMainWindow(app.NewWithID(appID), ui.Options{
		Storage:   storage.NewManager(opts.configPath, logger),
		Scheduler: schedule.NewTimer(fyne.Do),
		Logger:    logger,
		Chime:     chime,
	})
	mainWindow.ShowAndRun()
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
