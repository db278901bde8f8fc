package record

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"

	"tableflip.dev/casedesk/pkg/viewstate"
)

// NavKind distinguishes plain links from accordion entries.
type NavKind int

const (
	// NavLeaf is a link with no children.
	NavLeaf NavKind = iota
	// NavExpandable is an accordion trigger holding leaf children.
	NavExpandable
)

func (k NavKind) String() string {
	if k == NavExpandable {
		return "expandable"
	}
	return "leaf"
}

// NavEntry is a sidebar navigation item. Build entries with Leaf and
// NewExpandable; children of an expandable entry are always leaves, so the
// tree is at most two levels deep.
type NavEntry struct {
	ID     string
	Label  string
	Icon   string
	Href   string
	Active bool
	Badge  string

	kind     NavKind
	children []NavEntry
}

// LeafOption customises a leaf entry.
type LeafOption func(*NavEntry)

// WithActive marks the entry as the current page.
func WithActive() LeafOption {
	return func(e *NavEntry) { e.Active = true }
}

// WithBadge attaches a counter badge.
func WithBadge(badge string) LeafOption {
	return func(e *NavEntry) { e.Badge = badge }
}

// WithIcon sets the glyph key shown before the label.
func WithIcon(icon string) LeafOption {
	return func(e *NavEntry) { e.Icon = icon }
}

// Leaf builds a link entry.
func Leaf(id, label, href string, opts ...LeafOption) NavEntry {
	e := NavEntry{ID: id, Label: label, Href: href, kind: NavLeaf}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewExpandable builds an accordion entry. Every child must be a leaf.
func NewExpandable(id, label, icon string, children ...NavEntry) (NavEntry, error) {
	for _, c := range children {
		if c.kind != NavLeaf {
			return NavEntry{}, goerr.New("expandable nav entries only hold leaves",
				goerr.V("id", id),
				goerr.V("child", c.ID),
				goerr.T(viewstate.ErrTagInvalidState))
		}
	}
	return NavEntry{
		ID:       id,
		Label:    label,
		Icon:     icon,
		kind:     NavExpandable,
		children: append([]NavEntry(nil), children...),
	}, nil
}

// Kind returns the entry variant.
func (e NavEntry) Kind() NavKind { return e.kind }

// Children returns a copy of the leaf children of an expandable entry.
func (e NavEntry) Children() []NavEntry {
	return append([]NavEntry(nil), e.children...)
}

// HasActiveChild reports whether any child is the current page.
func (e NavEntry) HasActiveChild() bool {
	for _, c := range e.children {
		if c.Active {
			return true
		}
	}
	return false
}

// DefaultExpanded returns the ID of the first expandable entry that contains
// the current page, or "" when none does.
func DefaultExpanded(entries []NavEntry) string {
	for _, e := range entries {
		if e.kind == NavExpandable && e.HasActiveChild() {
			return e.ID
		}
	}
	return ""
}

// ExpandableIDs lists the IDs of the expandable entries in order.
func ExpandableIDs(entries []NavEntry) []string {
	var ids []string
	for _, e := range entries {
		if e.kind == NavExpandable {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

type navDoc struct {
	ID       string   `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	Kind     string   `json:"kind" yaml:"kind"`
	Icon     string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Href     string   `json:"href,omitempty" yaml:"href,omitempty"`
	Active   bool     `json:"active,omitempty" yaml:"active,omitempty"`
	Badge    string   `json:"badge,omitempty" yaml:"badge,omitempty"`
	Children []navDoc `json:"children,omitempty" yaml:"children,omitempty"`
}

func (e NavEntry) doc() navDoc {
	d := navDoc{
		ID:     e.ID,
		Label:  e.Label,
		Kind:   e.kind.String(),
		Icon:   e.Icon,
		Href:   e.Href,
		Active: e.Active,
		Badge:  e.Badge,
	}
	for _, c := range e.children {
		d.Children = append(d.Children, c.doc())
	}
	return d
}

// MarshalJSON renders the entry with its variant and children.
func (e NavEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.doc())
}

// MarshalYAML implements yaml.Marshaler.
func (e NavEntry) MarshalYAML() (interface{}, error) {
	return e.doc(), nil
}
