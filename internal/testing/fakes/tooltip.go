package fakes

import "github.com/penwyp/go-linechart/internal/core/model"

// ShowCall is one recorded Tooltip.Show call
type ShowCall struct {
	Anchor model.Anchor
	Data   model.TooltipData
}

// Tooltip records Show and Hide calls. It implements tooltip.Tooltip.
type Tooltip struct {
	Shows []ShowCall
	Hides int
}

func (t *Tooltip) Show(anchor model.Anchor, data model.TooltipData) {
	t.Shows = append(t.Shows, ShowCall{Anchor: anchor, Data: data})
}

func (t *Tooltip) Hide() {
	t.Hides++
}

// Last returns the most recent Show call
func (t *Tooltip) Last() (ShowCall, bool) {
	if len(t.Shows) == 0 {
		return ShowCall{}, false
	}
	return t.Shows[len(t.Shows)-1], true
}
