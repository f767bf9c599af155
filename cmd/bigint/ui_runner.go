package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"bigint/internal/batch"
	"bigint/internal/ui"
)

type batchOutcome struct {
	results []batch.FileResult
	err     error
}

// runBatchWithUI runs the batch in the background while a Bubble Tea program
// renders its progress events. Leaving the program early (ctrl+c) cancels the
// batch.
func runBatchWithUI(ctx context.Context, title string, files []string, opts batch.Options) ([]batch.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan batch.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		opts.Progress = batch.ChannelSink{Ch: events, Done: ctx.Done()}
		res, err := batch.Run(ctx, files, opts)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()

	// Nobody reads events past this point.
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
