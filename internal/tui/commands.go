// Package tui renders live progress of scans and resolution stages in the terminal.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// TapeSource yields progrock updates. Read blocks until one is available
// and returns io.EOF once the source is closed and drained.
type TapeSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// MsgTapeUpdate carries one update read from the tape.
type MsgTapeUpdate struct {
	Update *progrock.StatusUpdate
}

// MsgTapeEnded reports that the tape has nothing more to deliver.
type MsgTapeEnded struct{}

// WaitForTape reads the next update. Any read error ends the stream.
func WaitForTape(tape TapeSource) tea.Cmd {
	return func() tea.Msg {
		update, err := tape.Read()
		if err != nil {
			return MsgTapeEnded{}
		}
		return MsgTapeUpdate{Update: update}
	}
}
