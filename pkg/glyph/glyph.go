// Package glyph maps dashboard icon names to terminal symbols.
package glyph

import "sort"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Order   int
}

func (g Glyph) String() string {
	return g.Symbol
}

const (
	Dashboard   = "dashboard"
	Tasks       = "tasks"
	Libraries   = "libraries"
	Saved       = "saved"
	Logo        = "logo"
	Attachment  = "attachment"
	Unassigned  = "unassigned"
	TrendUp     = "trend-up"
	TrendDown   = "trend-down"
	New         = "new"
	Bell        = "bell"
	Search      = "search"
	Expanded    = "expanded"
	Collapsed   = "collapsed"
	Checked     = "checked"
	Unchecked   = "unchecked"
	Partial     = "partial"
	Dot         = "dot"
	Bar         = "bar"
	Add         = "add"
	MoreLink    = "more"
	ProfileMenu = "profile-menu"
)

var glyphs = map[string]Glyph{
	Logo:        {Key: Logo, Symbol: "◆", Meaning: "application", Order: 0},
	Dashboard:   {Key: Dashboard, Symbol: "▦", Meaning: "dashboard", Order: 1},
	Tasks:       {Key: Tasks, Symbol: "☰", Meaning: "tasks", Order: 2},
	Libraries:   {Key: Libraries, Symbol: "▤", Meaning: "libraries", Order: 3},
	Saved:       {Key: Saved, Symbol: "♥", Meaning: "saved", Order: 4},
	Expanded:    {Key: Expanded, Symbol: "▾", Meaning: "section open", Order: 5},
	Collapsed:   {Key: Collapsed, Symbol: "▸", Meaning: "section closed", Order: 6},
	Checked:     {Key: Checked, Symbol: "[x]", Meaning: "selected", Order: 7},
	Unchecked:   {Key: Unchecked, Symbol: "[ ]", Meaning: "not selected", Order: 8},
	Partial:     {Key: Partial, Symbol: "[-]", Meaning: "some selected", Order: 9},
	Attachment:  {Key: Attachment, Symbol: "⎘", Meaning: "attachment", Order: 10},
	Unassigned:  {Key: Unassigned, Symbol: "⚇", Meaning: "no assignee", Order: 11},
	TrendUp:     {Key: TrendUp, Symbol: "↗", Meaning: "positive trend", Order: 12},
	TrendDown:   {Key: TrendDown, Symbol: "↘", Meaning: "negative trend", Order: 13},
	New:         {Key: New, Symbol: "•", Meaning: "new message", Order: 14},
	Bell:        {Key: Bell, Symbol: "♪", Meaning: "notifications", Order: 15},
	Search:      {Key: Search, Symbol: "⌕", Meaning: "search", Order: 16},
	Dot:         {Key: Dot, Symbol: "●", Meaning: "colour tag", Order: 17},
	Bar:         {Key: Bar, Symbol: "▌", Meaning: "event colour", Order: 18},
	Add:         {Key: Add, Symbol: "+", Meaning: "add", Order: 19},
	MoreLink:    {Key: MoreLink, Symbol: "›", Meaning: "full list", Order: 20},
	ProfileMenu: {Key: ProfileMenu, Symbol: "⌄", Meaning: "profile menu", Order: 21},
}

// For returns the glyph registered under key. Unknown keys render as a blank
// so a missing icon never shifts a label.
func For(key string) Glyph {
	if g, ok := glyphs[key]; ok {
		return g
	}
	return Glyph{Key: key, Symbol: " "}
}

// Symbol is shorthand for For(key).Symbol.
func Symbol(key string) string {
	return For(key).Symbol
}

// All returns every glyph in legend order.
func All() []Glyph {
	out := make([]Glyph, 0, len(glyphs))
	for _, g := range glyphs {
		out = append(out, g)
	}
	sort.Sort(ByOrder(out))
	return out
}

// ByOrder sorts glyphs by legend position.
type ByOrder []Glyph

func (a ByOrder) Len() int           { return len(a) }
func (a ByOrder) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByOrder) Less(i, j int) bool { return a[i].Order < a[j].Order }
