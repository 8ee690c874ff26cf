package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"alloy/internal/driver"
	"alloy/internal/ui"
)

type batchOutcome struct {
	result driver.DirResult
	err    error
}

func runBatchWithUI(ctx context.Context, title string, files []string, dir string, opts driver.Options) (driver.DirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = driver.ChannelSink{Ch: events}
		res, err := driver.EnhanceDir(ctx, dir, optsCopy)
		outcomeCh <- batchOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
