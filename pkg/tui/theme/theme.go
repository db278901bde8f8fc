package theme

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/casedesk/pkg/record"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Palette Palette
	Header  HeaderTheme
	Sidebar SidebarTheme
	Card    CardTheme
	Footer  FooterTheme
	Modal   ModalTheme
}

// Palette holds the resolved accent colours.
type Palette struct {
	Primary     lipgloss.Color
	Blue        lipgloss.Color
	Green       lipgloss.Color
	Purple      lipgloss.Color
	Destructive lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color
	Muted       lipgloss.Color
	Foreground  lipgloss.Color
	Accent      lipgloss.Color
	Border      lipgloss.Color
	Focus       lipgloss.Color
}

// HeaderTheme styles the top bar.
type HeaderTheme struct {
	Bar          lipgloss.Style
	Search       lipgloss.Style
	SearchActive lipgloss.Style
	Role         lipgloss.Style
	Name         lipgloss.Style
	Avatar       lipgloss.Style
	Notification lipgloss.Style
	Menu         lipgloss.Style
	MenuDanger   lipgloss.Style
}

// SidebarTheme styles the navigation column.
type SidebarTheme struct {
	Frame       lipgloss.Style
	Logo        lipgloss.Style
	Section     lipgloss.Style
	Item        lipgloss.Style
	ItemOpen    lipgloss.Style
	ItemHinted  lipgloss.Style
	ItemActive  lipgloss.Style
	SubItem     lipgloss.Style
	Badge       lipgloss.Style
	Cursor      lipgloss.Style
	RecentEntry lipgloss.Style
	Avatar      lipgloss.Style
}

// CardTheme styles the framed dashboard cards.
type CardTheme struct {
	Frame        lipgloss.Style
	FocusedFrame lipgloss.Style
	Title        lipgloss.Style
	Link         lipgloss.Style
	Body         lipgloss.Style
	Strong       lipgloss.Style
	Muted        lipgloss.Style
	Cursor       lipgloss.Style
	Chip         lipgloss.Style
	Separator    lipgloss.Style
	Avatar       lipgloss.Style
	BigNumber    lipgloss.Style
}

// FooterTheme groups styles used by the bottom help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ModalTheme styles centered overlays such as help.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// Default returns the dark theme.
func Default() Theme {
	return build(darkPalette())
}

// Light returns the theme tuned for light terminals.
func Light() Theme {
	p := darkPalette()
	p.Foreground = lipgloss.Color("235")
	p.Muted = lipgloss.Color("243")
	p.Accent = lipgloss.Color("254")
	p.Border = lipgloss.Color("250")
	return build(p)
}

// ByName returns the named theme, falling back to Default.
func ByName(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "light") {
		return Light()
	}
	return Default()
}

func darkPalette() Palette {
	return Palette{
		Primary:     hsl(38, 92, 50),
		Blue:        hsl(221, 83, 53),
		Green:       hsl(142, 71, 45),
		Purple:      hsl(262, 83, 58),
		Destructive: hsl(0, 84, 60),
		Success:     hsl(142, 71, 45),
		Warning:     hsl(48, 96, 53),
		Muted:       lipgloss.Color("244"),
		Foreground:  lipgloss.Color("252"),
		Accent:      lipgloss.Color("237"),
		Border:      lipgloss.Color("240"),
		Focus:       lipgloss.Color("#39FF14"),
	}
}

func build(p Palette) Theme {
	fg := lipgloss.NewStyle().Foreground(p.Foreground)
	muted := lipgloss.NewStyle().Foreground(p.Muted)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	return Theme{
		Palette: p,
		Header: HeaderTheme{
			Bar:          lipgloss.NewStyle().Padding(0, 1),
			Search:       muted,
			SearchActive: fg.Bold(true),
			Role:         muted,
			Name:         fg.Bold(true),
			Avatar:       lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(p.Primary).Bold(true).Padding(0, 1),
			Notification: lipgloss.NewStyle().Foreground(p.Destructive),
			Menu:         fg,
			MenuDanger:   lipgloss.NewStyle().Foreground(p.Destructive),
		},
		Sidebar: SidebarTheme{
			Frame:       lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(p.Border).Padding(0, 1),
			Logo:        lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
			Section:     muted.Bold(true),
			Item:        fg,
			ItemOpen:    fg.Background(p.Accent),
			ItemHinted:  fg.Faint(true).Background(p.Accent),
			ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(p.Primary),
			SubItem:     muted,
			Badge:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(p.Destructive).Padding(0, 1),
			Cursor:      lipgloss.NewStyle().Reverse(true),
			RecentEntry: muted,
			Avatar:      lipgloss.NewStyle().Foreground(p.Foreground).Background(p.Accent).Padding(0, 1),
		},
		Card: CardTheme{
			Frame:        frame,
			FocusedFrame: frame.BorderForeground(p.Focus),
			Title:        fg.Bold(true),
			Link:         lipgloss.NewStyle().Foreground(p.Primary),
			Body:         fg,
			Strong:       fg.Bold(true),
			Muted:        muted,
			Cursor:       lipgloss.NewStyle().Reverse(true),
			Chip:         muted.Background(p.Accent).Padding(0, 1),
			Separator:    lipgloss.NewStyle().Foreground(p.Border),
			Avatar:       lipgloss.NewStyle().Foreground(p.Muted).Background(p.Accent).Padding(0, 1),
			BigNumber:    fg.Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
		},
	}
}

// Tone maps a semantic tone to its badge style.
func (t Theme) Tone(tone record.Tone) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch tone {
	case record.ToneSuccess:
		return base.Foreground(t.Palette.Success)
	case record.ToneWarning:
		return base.Foreground(t.Palette.Warning)
	case record.ToneDanger:
		return base.Foreground(t.Palette.Destructive)
	default:
		return base.Foreground(t.Palette.Muted)
	}
}

// Priority returns the badge style for a case priority.
func (t Theme) Priority(p record.Priority) lipgloss.Style {
	return t.Tone(p.Tone())
}

// Trend colours a trend label by its direction.
func (t Theme) Trend(d record.Direction) lipgloss.Style {
	if d == record.Negative {
		return lipgloss.NewStyle().Foreground(t.Palette.Destructive)
	}
	return lipgloss.NewStyle().Foreground(t.Palette.Success)
}

// Tag resolves a palette tag. Unknown tags fall back to the muted colour.
func (p Palette) Tag(tag record.ColorTag) lipgloss.Color {
	switch tag {
	case record.ColorPrimary:
		return p.Primary
	case record.ColorBlue:
		return p.Blue
	case record.ColorGreen:
		return p.Green
	case record.ColorPurple:
		return p.Purple
	case record.ColorDestructive:
		return p.Destructive
	default:
		return p.Muted
	}
}

var hslPattern = regexp.MustCompile(`^hsl\(\s*([\d.]+)\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%\s*\)$`)

// Resolve accepts a palette tag, an "hsl(h, s%, l%)" string or a literal
// colour (hex or ANSI index).
func (p Palette) Resolve(spec string) lipgloss.Color {
	spec = strings.TrimSpace(spec)
	if m := hslPattern.FindStringSubmatch(spec); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		s, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		return hsl(h, s, l)
	}
	switch record.ColorTag(spec) {
	case record.ColorPrimary, record.ColorBlue, record.ColorGreen, record.ColorPurple, record.ColorDestructive:
		return p.Tag(record.ColorTag(spec))
	}
	if spec == "" {
		return p.Muted
	}
	return lipgloss.Color(spec)
}

// hsl takes saturation and lightness as percentages.
func hsl(h, s, l float64) lipgloss.Color {
	return lipgloss.Color(colorful.Hsl(h, s/100, l/100).Clamped().Hex())
}
