// Package events declares the messages dashboard components emit so the
// composition root can log and react to them.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/casedesk/pkg/viewstate"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

const (
	Header    ComponentID = "header"
	Sidebar   ComponentID = "sidebar"
	Cases     ComponentID = "cases"
	Feed      ComponentID = "feed"
	Agenda    ComponentID = "agenda"
	Breakdown ComponentID = "breakdown"
)

// Describer is implemented by every message in this package.
type Describer interface {
	Describe() string
}

// CaseToggleMsg is emitted after a case row's selected flag flipped.
type CaseToggleMsg struct {
	Component ComponentID
	CaseID    string
	Selected  bool
}

// Describe implements the logging helper.
func (m CaseToggleMsg) Describe() string {
	return fmt.Sprintf(`case:%q selected:%t`, m.CaseID, m.Selected)
}

// CaseSelectAllMsg is emitted after the header checkbox was applied.
type CaseSelectAllMsg struct {
	Component ComponentID
	State     viewstate.Check
}

// Describe implements the logging helper.
func (m CaseSelectAllMsg) Describe() string {
	return fmt.Sprintf(`state:%q`, m.State)
}

// DisclosureMsg announces that a collapsible region opened or closed.
type DisclosureMsg struct {
	Component ComponentID
	Key       string
	Open      bool
}

// Describe implements the logging helper.
func (m DisclosureMsg) Describe() string {
	state := "closed"
	if m.Open {
		state = "open"
	}
	return fmt.Sprintf(`key:%q state:%q`, m.Key, state)
}

// NavSelectMsg is emitted when a navigation leaf is activated.
type NavSelectMsg struct {
	Component ComponentID
	ID        string
	Href      string
}

// Describe implements the logging helper.
func (m NavSelectMsg) Describe() string {
	return fmt.Sprintf(`id:%q href:%q`, m.ID, m.Href)
}

// SearchMsg carries the current search query.
type SearchMsg struct {
	Component ComponentID
	Query     string
}

// Describe implements the logging helper.
func (m SearchMsg) Describe() string {
	return fmt.Sprintf(`query:%q`, m.Query)
}

// FocusMsg indicates a component just gained focus.
type FocusMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m FocusMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"focus"`, m.Component)
}

// BlurMsg indicates a component just lost focus.
type BlurMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m BlurMsg) Describe() string {
	return fmt.Sprintf(`component:%q state:"blur"`, m.Component)
}

// DebugMsg captures optional diagnostic notes emitted by components.
type DebugMsg struct {
	Component ComponentID
	Context   string
	Detail    string
}

// Describe renders the debug message in a human-readable format.
func (m DebugMsg) Describe() string {
	return fmt.Sprintf(`component:%q context:%q detail:%q`, m.Component, m.Context, m.Detail)
}

// Emit wraps any message in a tea.Cmd.
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// FocusCmd wraps a FocusMsg in a tea.Cmd helper.
func FocusCmd(component ComponentID) tea.Cmd {
	return Emit(FocusMsg{Component: component})
}

// BlurCmd wraps a BlurMsg in a tea.Cmd helper.
func BlurCmd(component ComponentID) tea.Cmd {
	return Emit(BlurMsg{Component: component})
}

// DebugCmd wraps DebugMsg creation in a tea.Cmd helper.
func DebugCmd(component ComponentID, context, detail string) tea.Cmd {
	return Emit(DebugMsg{Component: component, Context: context, Detail: detail})
}

// SourceOf returns the component that emitted msg.
func SourceOf(msg tea.Msg) (ComponentID, bool) {
	switch v := msg.(type) {
	case CaseToggleMsg:
		return v.Component, true
	case CaseSelectAllMsg:
		return v.Component, true
	case DisclosureMsg:
		return v.Component, true
	case NavSelectMsg:
		return v.Component, true
	case SearchMsg:
		return v.Component, true
	case FocusMsg:
		return v.Component, true
	case BlurMsg:
		return v.Component, true
	case DebugMsg:
		return v.Component, true
	default:
		return "", false
	}
}
