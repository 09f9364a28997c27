package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"jsoncmp"
	"jsoncmp/internal/config"
	"jsoncmp/internal/loader"
)

// settings are the effective options after merging the config file with
// command-line flags, flags win
type settings struct {
	color    string
	timings  bool
	quiet    bool
	logFile  string
	maxDepth int
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return settings{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		color:    cfg.Color,
		timings:  cfg.Timings,
		logFile:  cfg.LogFile,
		maxDepth: cfg.MaxDepth,
	}
	if cmd.Flags().Changed("color") {
		s.color, _ = cmd.Flags().GetString("color")
	}
	if cmd.Flags().Changed("timings") {
		s.timings, _ = cmd.Flags().GetBool("timings")
	}
	if cmd.Flags().Changed("log") {
		s.logFile, _ = cmd.Flags().GetString("log")
	}
	if cmd.Flags().Changed("max-depth") {
		s.maxDepth, _ = cmd.Flags().GetInt("max-depth")
	}
	s.quiet, _ = cmd.Flags().GetBool("quiet")

	switch s.color {
	case "auto", "on", "off":
	default:
		return settings{}, fmt.Errorf("invalid --color value %q (want auto, on or off)", s.color)
	}
	return s, nil
}

func (s settings) colorEnabled(f *os.File) bool {
	switch s.color {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

// newLogger returns a logger writing to the optional run-log file, or a
// no-op logger when none is configured. Console reporting belongs to the
// command itself; the log file is an audit trail of runs.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}

func runCompare(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(s.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	start := time.Now()
	timings := stageTimings{}

	readStart := time.Now()
	left, right, err := loader.LoadPair(cmd.Context(), args[0], args[1])
	if err != nil {
		log.Error("comparison not performed", "error", err)
		return err
	}
	timings[stageRead] = time.Since(readStart)

	opts := []jsoncmp.Option{jsoncmp.OptionObserver(timings.observe)}
	if s.maxDepth > 0 {
		opts = append(opts, jsoncmp.OptionMaxDepth(s.maxDepth))
	}
	sum, err := jsoncmp.Compare(left, right, opts...)
	if err != nil {
		log.Error("comparison failed", "error", err)
		return err
	}

	out := cmd.OutOrStdout()
	colorTTY := s.colorEnabled(os.Stdout)
	if s.quiet {
		err = jsoncmp.FormatDiffs(out, sum.Diffs, colorTTY)
	} else {
		err = jsoncmp.FormatPretty(out, sum, colorTTY)
	}
	if err != nil {
		return err
	}

	log.Info("comparison complete",
		"left", args[0], "right", args[1],
		"leftNodes", sum.LeftNodes, "rightNodes", sum.RightNodes,
		"differences", len(sum.Diffs),
		"duration", time.Since(start))

	if s.timings {
		printStageTimings(cmd.ErrOrStderr(), timings, time.Since(start))
	}
	return nil
}
