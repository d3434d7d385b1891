package main

import (
	"fmt"
	"io"
	"ncpaint/app"
	"ncpaint/device/tcell"
	"ncpaint/model"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type flags struct {
	brush   string
	quit    string
	logFile string
	debug   bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "ncpaint",
		Short: "Paint in the terminal with the mouse",
		Long: "Drag with the left button to paint and with the right button to erase.\n" +
			"Any key becomes the brush; the quit key exits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), f)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&f.brush, "brush", string(model.DefaultBrush), "initial brush glyph")
	cmd.Flags().StringVar(&f.quit, "quit", string(model.DefaultQuitKey), "key that quits")
	cmd.Flags().StringVar(&f.logFile, "log", "", "write the log to this file")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log every input event")
	return cmd
}

func (f *flags) options() (app.Options, error) {
	brush, err := parseRune("brush", f.brush)
	if err != nil {
		return app.Options{}, err
	}
	quit, err := parseRune("quit", f.quit)
	if err != nil {
		return app.Options{}, err
	}
	return app.Options{Brush: brush, QuitKey: quit}, nil
}

func parseRune(name, value string) (rune, error) {
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("--%s must be exactly one character, got %q", name, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

func setupLog(f *flags) (io.Closer, error) {
	if f.debug {
		log.SetLevel(log.DebugLevel)
	}
	if f.logFile == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	file, err := os.OpenFile(f.logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	log.SetReportTimestamp(true)
	return file, nil
}

func run(out io.Writer, f *flags) error {
	opts, err := f.options()
	if err != nil {
		return err
	}
	logFile, err := setupLog(f)
	if err != nil {
		return err
	}
	defer logFile.Close()

	dev, err := tcell.NewDevice()
	if err != nil {
		log.Error("failed to open terminal", "err", err)
		return err
	}

	state := app.Run(dev, dev, opts)
	return finish(out, dev, &state)
}

type stopper interface {
	Stop() error
}

// finish restores the terminal and prints the summary, even when restoring fails.
func finish(out io.Writer, dev stopper, state *model.State) error {
	err := dev.Stop()
	if err != nil {
		log.Error("failed to restore terminal", "err", err)
	}
	printSummary(out, state)
	return err
}

func printSummary(out io.Writer, s *model.State) {
	fmt.Fprintf(out, "Ran for %d loops, processed %d keys and %d mouse events\n",
		s.Loops, s.Keys, s.MouseEvents)
}
