package tui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens feed and renders it to out until the feed is closed, ctx is
// done or the user quits the view.
func Run(ctx context.Context, feed *Feed, out io.Writer) error {
	feed.Open()

	p := tea.NewProgram(
		NewModel(feed),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Renderer adapts a Feed to the CLI's progress hook.
type Renderer struct {
	Feed *Feed
}

// Run renders the feed to out.
func (r Renderer) Run(ctx context.Context, out io.Writer) error {
	return Run(ctx, r.Feed, out)
}

// Close ends the feed, which stops the renderer once it has drained.
func (r Renderer) Close() error {
	return r.Feed.Close()
}
