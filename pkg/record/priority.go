package record

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"tableflip.dev/casedesk/pkg/viewstate"
)

// Priority ranks a case awaiting acceptance.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists every priority from lowest to highest.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority accepts a priority name in any case.
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities() {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", goerr.New("unknown priority",
		goerr.V("priority", s),
		goerr.T(viewstate.ErrTagInvalidState))
}

// Tone is a semantic style token. Renderers map tones to concrete colours.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneMuted   Tone = "muted"
)

// Medium is yellow (warning). There is no orange tone.
var priorityTones = map[Priority]Tone{
	PriorityLow:    ToneSuccess,
	PriorityMedium: ToneWarning,
	PriorityHigh:   ToneDanger,
}

// Tone returns the badge tone for p. Unknown priorities are muted.
func (p Priority) Tone() Tone {
	if t, ok := priorityTones[p]; ok {
		return t
	}
	return ToneMuted
}
