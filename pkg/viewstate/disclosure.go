package viewstate

import "github.com/m-mizutani/goerr/v2"

// Accordion holds at most one open panel among a fixed set of keys. Opening a
// panel closes whichever was open before.
type Accordion struct {
	keys   []string
	known  map[string]struct{}
	active string
}

// NewAccordion builds an accordion over keys with initial open. An empty or
// unknown initial leaves every panel closed.
func NewAccordion(keys []string, initial string) *Accordion {
	a := &Accordion{
		keys:  append([]string(nil), keys...),
		known: make(map[string]struct{}, len(keys)),
	}
	for _, k := range keys {
		a.known[k] = struct{}{}
	}
	if _, ok := a.known[initial]; ok {
		a.active = initial
	}
	return a
}

// Keys returns the panel keys in construction order.
func (a *Accordion) Keys() []string {
	return append([]string(nil), a.keys...)
}

// Active returns the open panel key, if any.
func (a *Accordion) Active() (string, bool) {
	return a.active, a.active != ""
}

// IsOpen reports whether key is the open panel.
func (a *Accordion) IsOpen(key string) bool {
	return key != "" && a.active == key
}

// SetActive opens key and closes any other panel. The empty key closes all.
func (a *Accordion) SetActive(key string) error {
	if key == "" {
		a.active = ""
		return nil
	}
	if _, ok := a.known[key]; !ok {
		return goerr.New("accordion panel not found",
			goerr.V("key", key),
			goerr.T(ErrTagNotFound))
	}
	a.active = key
	return nil
}

// Toggle opens key, or closes it when it is already the open panel.
func (a *Accordion) Toggle(key string) error {
	if a.IsOpen(key) {
		a.active = ""
		return nil
	}
	return a.SetActive(key)
}

// Disclosures holds independent open/closed flags per region. Toggling one
// region never affects another.
type Disclosures struct {
	open map[string]bool
}

// NewDisclosures registers the regions in initial with their starting state.
func NewDisclosures(initial map[string]bool) *Disclosures {
	d := &Disclosures{open: make(map[string]bool, len(initial))}
	for k, v := range initial {
		d.open[k] = v
	}
	return d
}

// IsOpen reports whether the region is open. Unknown regions are closed.
func (d *Disclosures) IsOpen(key string) bool {
	return d.open[key]
}

// Set opens or closes a region.
func (d *Disclosures) Set(key string, open bool) error {
	if _, ok := d.open[key]; !ok {
		return goerr.New("disclosure region not found",
			goerr.V("key", key),
			goerr.T(ErrTagNotFound))
	}
	d.open[key] = open
	return nil
}

// Toggle flips a region.
func (d *Disclosures) Toggle(key string) error {
	open, ok := d.open[key]
	if !ok {
		return goerr.New("disclosure region not found",
			goerr.V("key", key),
			goerr.T(ErrTagNotFound))
	}
	d.open[key] = !open
	return nil
}
