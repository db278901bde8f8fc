package record

import "strings"

// Matches reports whether the case name, dates, attachment or assignee
// contain query, ignoring case. An empty query matches everything.
func (c Case) Matches(query string) bool {
	fields := []string{c.Name, c.Dates, string(c.Priority)}
	if c.Attachment != nil {
		fields = append(fields, c.Attachment.Name)
	}
	if c.Assignee != nil {
		fields = append(fields, c.Assignee.Name)
	}
	return containsFold(query, fields...)
}

// Matches reports whether the sender or snippet contain query, ignoring case.
func (m Message) Matches(query string) bool {
	return containsFold(query, m.Sender.Name, m.Snippet)
}

// Matches reports whether the event title contains query, ignoring case.
func (e Event) Matches(query string) bool {
	return containsFold(query, e.Title, e.DayGroup)
}

func containsFold(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
