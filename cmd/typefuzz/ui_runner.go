package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"typefuzz/internal/campaign"
	"typefuzz/internal/solver"
	"typefuzz/internal/ui"
)

type campaignOutcome struct {
	results []campaign.Result
	err     error
}

// runWithUI drives one sequential campaign behind the live progress model.
// The campaign runs in its own goroutine and streams events into the UI;
// the UI exits when the event channel closes.
func runWithUI(ctx context.Context, title string, cfg campaign.Config, s solver.Interface) ([]campaign.Result, error) {
	events := make(chan campaign.Event, 256)
	outcomeCh := make(chan campaignOutcome, 1)

	go func() {
		res, err := campaign.Run(ctx, cfg, s, campaign.ChannelSink{Ch: events})
		outcomeCh <- campaignOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, cfg.Tests, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
