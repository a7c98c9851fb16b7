package ui

import (
	"fmt"

	"github.com/idilsaglam/packlist/internal/model"
)

const (
	EmptyMessage    = "Start adding some items to your packing list 🚀"
	CompleteMessage = "You got everything! Ready to go ✈️"
)

// SummaryMessage picks the status line for s.
func SummaryMessage(s model.Summary) string {
	switch {
	case s.Empty:
		return EmptyMessage
	case s.Complete():
		return CompleteMessage
	default:
		return fmt.Sprintf("You have %d items on your list, and you already packed %d (%d%%)",
			s.Total, s.Packed, s.Percent)
	}
}

// EntryLine renders one row: box, quantity, description. Packed rows are struck through.
func EntryLine(index int, it model.Entry) string {
	t := Current()
	box, color := t.BoxUnchecked, t.Muted
	text := fmt.Sprintf("%d %s", it.Quantity, it.Description)
	if it.Packed {
		box, color = t.BoxChecked, t.Success
		text = Strike(text)
	}
	return fmt.Sprintf("%s %s %s", Dim(fmt.Sprintf("%2d.", index)), C(color, box), text)
}
