// Package tui drives the sketches in a terminal: a fixed-rate Bubble Tea
// loop, key mapping with a held-key latch, the game menu, the scoreboard and
// the SSH server that serves the same session model to remote players.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick chain that scheduled it.
type TickMsg struct {
	At   time.Time
	Loop uint64
}

var loops atomic.Uint64

// nextLoop returns a fresh tick chain ID. A model only accepts ticks of its
// own chain, so a tick still in flight from a closed game is dropped.
func nextLoop() uint64 {
	return loops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
