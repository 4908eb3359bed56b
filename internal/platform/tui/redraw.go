// Package tui provides the Bubble Tea integration for the brick breaker.
// It turns engine redraw requests into messages, maps input onto engine
// transitions and serves sessions over SSH.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RedrawMsg asks the model to repaint the current world.
type RedrawMsg struct{}

// SessionEndedMsg is sent once the engine has stopped on its own.
type SessionEndedMsg struct{}

// Redrawer carries redraw requests from the engine's render loop into the
// Bubble Tea event loop. At most one request is pending at a time.
type Redrawer struct {
	ch chan struct{}
}

// NewRedrawer creates a redrawer with an empty request slot.
func NewRedrawer() *Redrawer {
	return &Redrawer{ch: make(chan struct{}, 1)}
}

// Request queues a redraw. It never blocks; a request made while another is
// pending is dropped.
func (r *Redrawer) Request() {
	select {
	case r.ch <- struct{}{}:
	default:
	}
}

// Wait returns a command that delivers the next redraw request, or
// SessionEndedMsg once done is closed.
func (r *Redrawer) Wait(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-r.ch:
			return RedrawMsg{}
		case <-done:
			return SessionEndedMsg{}
		}
	}
}
