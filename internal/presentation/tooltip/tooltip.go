package tooltip

import "github.com/penwyp/go-linechart/internal/core/model"

// Tooltip is the overlay collaborator of the chart. The chart calls Show on
// every frame where the crosshair hits a sample and Hide on pointer-leave.
type Tooltip interface {
	Show(anchor model.Anchor, data model.TooltipData)
	Hide()
}

// Nop is a Tooltip that ignores every call
type Nop struct{}

func (Nop) Show(model.Anchor, model.TooltipData) {}
func (Nop) Hide()                                {}
