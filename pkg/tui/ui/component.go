package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/casedesk/pkg/tui/events"
)

// Component defines the contract for reusable Bubble Tea widgets.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Focusable is a component that takes keyboard input while focused.
type Focusable interface {
	Component
	ID() events.ComponentID
	Focus() tea.Cmd
	Blur() tea.Cmd
	Focused() bool
}

// FocusRing cycles keyboard focus over a fixed order of components.
type FocusRing struct {
	items []Focusable
	pos   int
}

// NewFocusRing focuses the first item.
func NewFocusRing(items ...Focusable) *FocusRing {
	r := &FocusRing{items: items}
	if len(items) > 0 {
		items[0].Focus()
	}
	return r
}

// Current returns the focused component, or nil for an empty ring.
func (r *FocusRing) Current() Focusable {
	if len(r.items) == 0 {
		return nil
	}
	return r.items[r.pos]
}

// Next moves focus by delta positions, wrapping at either end.
func (r *FocusRing) Next(delta int) tea.Cmd {
	if len(r.items) == 0 {
		return nil
	}
	blur := r.items[r.pos].Blur()
	r.pos = ((r.pos+delta)%len(r.items) + len(r.items)) % len(r.items)
	return tea.Batch(blur, r.items[r.pos].Focus())
}

// FocusID moves focus to the component with id.
func (r *FocusRing) FocusID(id events.ComponentID) tea.Cmd {
	for i, item := range r.items {
		if item.ID() != id {
			continue
		}
		if i == r.pos {
			return nil
		}
		return r.Next(i - r.pos)
	}
	return nil
}
