package engine

import (
	"fmt"
	"slices"

	"github.com/idilsaglam/packlist/internal/model"
)

// View returns a fresh copy of the entries ordered by the active sort mode.
// Every ordering is stable, so entries with equal keys keep insertion order.
func (e *Engine) View() []model.Entry {
	out := slices.Clone(e.entries)
	if out == nil {
		out = []model.Entry{}
	}

	switch e.mode {
	case model.SortInput:
	case model.SortDescription:
		slices.SortStableFunc(out, func(a, b model.Entry) int {
			return e.collator.CompareString(a.Description, b.Description)
		})
	case model.SortPacked:
		slices.SortStableFunc(out, func(a, b model.Entry) int {
			return packedRank(a) - packedRank(b)
		})
	default:
		panic(fmt.Sprintf("engine: unhandled sort mode %v", e.mode))
	}
	return out
}

func packedRank(it model.Entry) int {
	if it.Packed {
		return 1
	}
	return 0
}

// Summary counts entries and the rounded share that is packed.
// Percent rounds half up and is only computed for a non-empty list.
func (e *Engine) Summary() model.Summary {
	total := len(e.entries)
	if total == 0 {
		return model.Summary{Empty: true}
	}
	packed := 0
	for _, it := range e.entries {
		if it.Packed {
			packed++
		}
	}
	return model.Summary{
		Total:   total,
		Packed:  packed,
		Percent: percent(packed, total),
	}
}

// percent computes round(part/total*100) with halves rounded up, in integers.
func percent(part, total int) int {
	return (part*200 + total) / (2 * total)
}
