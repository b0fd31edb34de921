// Package main provides the CLI entrypoint for typetest.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typetest/internal/generator"
	"github.com/verte-zerg/typetest/internal/session"
	"github.com/verte-zerg/typetest/internal/stats"
	"github.com/verte-zerg/typetest/internal/terminal"
	"github.com/verte-zerg/typetest/internal/theme"
	"github.com/verte-zerg/typetest/internal/tui"
	"github.com/verte-zerg/typetest/internal/wordlist"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

func main() {
	defer func() {
		if r := recover(); r != nil {
			logErrf("%s %v\n%s", errorStyle.Render("Error:"), r, debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		logErrf("%s %v\n", errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "typetest",
		Short:         "60-second terminal typing speed test",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTestCmd,
	}
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	out := cmd.OutOrStdout()

	palette, err := theme.Default()
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}
	words, err := wordlist.Default()
	if err != nil {
		return fmt.Errorf("failed to load words: %w", err)
	}

	restoreConsole, err := terminal.EnableVirtualTerminal(os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := restoreConsole(); err != nil {
			logErrf("failed to restore console: %v\n", err)
		}
	}()

	if err := tui.RunIntro(ctx, os.Stdin, out, palette); err != nil {
		if errors.Is(err, tui.ErrInterrupted) {
			printInterrupted(out)
			return nil
		}
		return err
	}

	queue := generator.New().Queue(words, session.QueueSize)
	sess := session.New(queue, session.DefaultDuration)
	renderer := tui.NewRenderer(out, frameWidth(), palette)

	input := terminal.NewRawInput(os.Stdin)
	if err := input.Enter(); err != nil {
		return fmt.Errorf("failed to prepare terminal: %w", err)
	}
	defer func() {
		if err := input.Exit(); err != nil {
			logErrf("%v\n", err)
		}
	}()

	runErr := tui.NewRunner(input, renderer).Run(ctx, sess)
	if err := renderer.Finish(); err != nil {
		logErrf("%v\n", err)
	}
	if err := input.Exit(); err != nil {
		return err
	}

	if errors.Is(runErr, tui.ErrInterrupted) {
		printInterrupted(out)
		return nil
	}
	if runErr != nil {
		return runErr
	}

	summary := stats.BuildSummary(sess, time.Now())
	return tui.RenderResults(out, summary, palette)
}

// frameWidth leaves the last terminal column free so lines never wrap.
func frameWidth() int {
	return terminal.Width(os.Stdout, tui.MaxWidth+1) - 1
}

func printInterrupted(w io.Writer) {
	if _, err := fmt.Fprintln(w, "\n\nTest interrupted!"); err != nil {
		logErrf("failed to write output: %v\n", err)
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
