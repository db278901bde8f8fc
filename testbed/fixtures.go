package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/casedesk/pkg/record"
	"tableflip.dev/casedesk/pkg/tui/components/breakdown"
	"tableflip.dev/casedesk/pkg/tui/components/calendar"
	"tableflip.dev/casedesk/pkg/tui/components/casetable"
	"tableflip.dev/casedesk/pkg/tui/components/feed"
	"tableflip.dev/casedesk/pkg/tui/components/header"
	"tableflip.dev/casedesk/pkg/tui/components/help"
	"tableflip.dev/casedesk/pkg/tui/components/performance"
	"tableflip.dev/casedesk/pkg/tui/components/sidebar"
	"tableflip.dev/casedesk/pkg/tui/theme"
	"tableflip.dev/casedesk/pkg/tui/ui"
	"tableflip.dev/casedesk/pkg/viewstate"
)

// subject is the component under test plus optional extra key handling the
// dashboard would normally do on its behalf.
type subject struct {
	component ui.Component
	keys      func(tea.KeyMsg) (tea.Cmd, bool)
}

type fixture struct {
	name  string
	short string
	build func(th theme.Theme) subject
}

func fixtures() []fixture {
	data := record.Sample()
	return []fixture{
		{name: "sidebar", short: "Navigation with accordion groups", build: func(th theme.Theme) subject {
			acc := viewstate.NewAccordion(record.ExpandableIDs(data.Nav), record.DefaultExpanded(data.Nav))
			return subject{component: sidebar.NewModel(data.Nav, data.Recent, acc, th, nil)}
		}},
		{name: "header", short: "Search box and profile menu", build: func(th theme.Theme) subject {
			h := header.NewModel(data.Profile, true, th, nil)
			return subject{component: h, keys: func(msg tea.KeyMsg) (tea.Cmd, bool) {
				if h.Mode() == header.ModeSearch {
					return nil, false
				}
				switch msg.String() {
				case "/":
					return h.BeginSearch(), true
				case "p":
					return h.ToggleMenu(), true
				}
				return nil, false
			}}
		}},
		{name: "cases", short: "Case table with selection", build: func(th theme.Theme) subject {
			return subject{component: casetable.NewModel(data.Cases, th, nil)}
		}},
		{name: "feed", short: "Communication feed", build: func(th theme.Theme) subject {
			return subject{component: feed.NewModel(data.Messages, th, nil)}
		}},
		{name: "agenda", short: "Calendar and task lists", build: func(th theme.Theme) subject {
			return subject{component: calendar.NewModel(data.Events, data.Tasks, th)}
		}},
		{name: "summary", short: "Greeting and metric cards", build: func(th theme.Theme) subject {
			return subject{component: performance.NewModel(data.Profile, data.Metrics, th)}
		}},
		{name: "breakdown", short: "Case type and country cards", build: func(th theme.Theme) subject {
			return subject{component: breakdown.NewModel(data.CaseTypes, data.Countries, th)}
		}},
		{name: "help", short: "Keyboard reference overlay", build: func(th theme.Theme) subject {
			return subject{component: help.New("dark", 1, 1)}
		}},
	}
}
