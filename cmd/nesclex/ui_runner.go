package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"nesclex/internal/driver"
	"nesclex/internal/source"
	"nesclex/internal/ui"
)

type tokenizeOutcome struct {
	fs      *source.FileSet
	results []*driver.FileResult
	err     error
}

// runTokenizeWithUI lexes files while a progress view follows the events
// on stderr.
func runTokenizeWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*source.FileSet, []*driver.FileResult, error) {
	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan tokenizeOutcome, 1)

	go func() {
		o := opts
		o.Progress = func(ev driver.ProgressEvent) { events <- ev }
		fs, results, err := driver.TokenizeFiles(ctx, files, o)
		outcomeCh <- tokenizeOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	if uiErr != nil {
		// дочитываем события, чтобы воркеры не заблокировались
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}

// lexInputs runs the driver with or without the progress view.
func lexInputs(ctx context.Context, title string, files []string, s *runSettings) (*source.FileSet, []*driver.FileResult, error) {
	if s.showProgress(len(files)) {
		return runTokenizeWithUI(ctx, title, files, s.driver)
	}
	return driver.TokenizeFiles(ctx, files, s.driver)
}
