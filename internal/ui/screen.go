// Package ui renders the map to the terminal with tcell.
package ui

import "github.com/gdamore/tcell/v2"

// defaultStyle is the base cell style every draw starts from.
var defaultStyle = tcell.StyleDefault.
	Background(tcell.ColorBlack).
	Foreground(tcell.ColorWhite)

// Screen owns the terminal session, narrowed to the handful of tcell
// calls the renderer and the game loop actually make.
type Screen struct {
	tc tcell.Screen
}

// NewScreen takes over the terminal: cell mode, cursor hidden, cleared
// to the default style. Close must run before the process exits or the
// terminal is left in cell mode.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.SetStyle(defaultStyle)
	tc.HideCursor()
	tc.Clear()
	return &Screen{tc: tc}, nil
}

// SetContent draws one rune at (x, y).
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.tc.SetContent(x, y, r, nil, style)
}

// Clear wipes the pending frame.
func (s *Screen) Clear() {
	s.tc.Clear()
}

// Show flushes the pending frame to the terminal.
func (s *Screen) Show() {
	s.tc.Show()
}

// Sync repaints every cell; used after a resize event.
func (s *Screen) Sync() {
	s.tc.Sync()
}

// PollEvent blocks until the next key or resize event.
func (s *Screen) PollEvent() tcell.Event {
	return s.tc.PollEvent()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.tc.Size()
}

// Close hands the terminal back.
func (s *Screen) Close() {
	s.tc.Fini()
}
