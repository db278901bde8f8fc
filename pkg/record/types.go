package record

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ColorTag names an accent colour from the dashboard palette.
type ColorTag string

const (
	ColorPrimary     ColorTag = "primary"
	ColorBlue        ColorTag = "blue"
	ColorGreen       ColorTag = "green"
	ColorPurple      ColorTag = "purple"
	ColorDestructive ColorTag = "destructive"
)

// Event is a calendar entry. DayGroup is the agenda grouping key.
type Event struct {
	ID       string   `json:"id" yaml:"id"`
	DayGroup string   `json:"dayGroup" yaml:"dayGroup"`
	Time     string   `json:"time" yaml:"time"`
	Title    string   `json:"title" yaml:"title"`
	Duration string   `json:"duration" yaml:"duration"`
	Color    ColorTag `json:"color" yaml:"color"`
}

// TaskOwner says whose list a task belongs to.
type TaskOwner string

const (
	OwnerMine   TaskOwner = "mine"
	OwnerOthers TaskOwner = "others"
)

// Title is the heading of the owner's task list.
func (o TaskOwner) Title() string {
	switch o {
	case OwnerMine:
		return "LIST OF MY TASKS"
	case OwnerOthers:
		return "TASK ASSIGNED TO OTHERS"
	default:
		return strings.ToUpper(string(o))
	}
}

// Task is a to-do item shown in the secondary column.
type Task struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	DueShort string    `json:"dueDateShort" yaml:"dueDateShort"`
	Color    ColorTag  `json:"color" yaml:"color"`
	Owner    TaskOwner `json:"owner" yaml:"owner"`
}

// Person is someone shown with an avatar.
type Person struct {
	Name      string `json:"name" yaml:"name"`
	Initials  string `json:"initials" yaml:"initials"`
	AvatarURL string `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty"`
}

// Attachment is a document linked to a case.
type Attachment struct {
	Name string `json:"name" yaml:"name"`
}

// Case is a row of the cases-to-be-accepted list. Attachment and Assignee are
// nil when absent. Selected is the only field that changes at runtime.
type Case struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Dates      string      `json:"dates" yaml:"dates"`
	Priority   Priority    `json:"priority" yaml:"priority"`
	Attachment *Attachment `json:"attachment,omitempty" yaml:"attachment,omitempty"`
	Assignee   *Person     `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Selected   bool        `json:"selected" yaml:"selected"`
}

// SelectionKey implements viewstate.Selectable.
func (c Case) SelectionKey() string { return c.ID }

// IsSelected implements viewstate.Selectable.
func (c Case) IsSelected() bool { return c.Selected }

// WithSelected implements viewstate.Selectable.
func (c Case) WithSelected(selected bool) Case {
	c.Selected = selected
	return c
}

// Message is an entry in the communication feed.
type Message struct {
	ID        string `json:"id" yaml:"id"`
	Sender    Person `json:"sender" yaml:"sender"`
	Snippet   string `json:"snippet" yaml:"snippet"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	IsNew     bool   `json:"isNew" yaml:"isNew"`
}

// Direction is the sign of a trend.
type Direction string

const (
	Positive Direction = "positive"
	Negative Direction = "negative"
)

// Trend is a signed percentage change over a period.
type Trend struct {
	Direction Direction `json:"direction" yaml:"direction"`
	Percent   float64   `json:"percent" yaml:"percent"`
	Period    string    `json:"period,omitempty" yaml:"period,omitempty"`
}

// Label formats the trend as "+14.88%" or "-5.67%".
func (t Trend) Label() string {
	sign := "+"
	if t.Direction == Negative {
		sign = "-"
	}
	return sign + strconv.FormatFloat(t.Percent, 'f', -1, 64) + "%"
}

// Point is one labelled sample of a series.
type Point struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// Metric is a performance card with its recent series.
type Metric struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Value  int     `json:"value" yaml:"value"`
	Trend  Trend   `json:"trend" yaml:"trend"`
	Series []Point `json:"series" yaml:"series"`
}

// Values returns the series values in order.
func (m Metric) Values() []int {
	out := make([]int, 0, len(m.Series))
	for _, p := range m.Series {
		out = append(out, p.Value)
	}
	return out
}

// CaseType is one bar of the case type breakdown.
type CaseType struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
	// Color is an "hsl(h, s%, l%)" string or a palette tag.
	Color string `json:"color" yaml:"color"`
}

// Country is the number of active cases in a country.
type Country struct {
	Country string `json:"country" yaml:"country"`
	Active  int    `json:"activeCases" yaml:"activeCases"`
	Trend   Trend  `json:"trend" yaml:"trend"`
}

// Profile is the signed-in user shown in the header and greeting.
type Profile struct {
	Name         string `json:"name" yaml:"name"`
	Role         string `json:"role" yaml:"role"`
	AvatarSeed   string `json:"avatarSeed" yaml:"avatarSeed"`
	GreetingName string `json:"greetingName" yaml:"greetingName"`
}

// Initials takes the first letter of each word of the name, upper-cased.
func (p Profile) Initials() string {
	return Initials(p.Name)
}

// GreetingInitials is the first two letters of the greeting name.
func (p Profile) GreetingInitials() string {
	name := strings.TrimSpace(p.GreetingName)
	if utf8.RuneCountInString(name) > 2 {
		name = string([]rune(name)[:2])
	}
	return strings.ToUpper(name)
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// AvatarURL derives the avatar image location from the seed.
func (p Profile) AvatarURL() string {
	seed := nonAlnum.ReplaceAllString(strings.ToLower(p.AvatarSeed), "")
	return "https://avatar.vercel.sh/" + seed + ".png"
}

// Initials returns the upper-cased first letter of every word in name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
