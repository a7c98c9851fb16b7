// Package export writes the current view as indented JSON.
// Output only: there is no loader, the list lives in memory.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/packlist/internal/model"
)

// Snapshot is the document written by Write.
type Snapshot struct {
	Sort    string        `json:"sort"`
	Items   []model.Entry `json:"items"`
	Summary model.Summary `json:"summary"`
}

func Write(w io.Writer, mode model.SortMode, view []model.Entry, s model.Summary) error {
	if view == nil {
		view = []model.Entry{}
	}
	b, err := json.MarshalIndent(Snapshot{Sort: mode.String(), Items: view, Summary: s}, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
