// Package engine owns the packing list and derives sorted views and summaries
// from it. An Engine is not safe for concurrent use; hosts that call it from
// more than one goroutine must serialize access themselves.
package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/idilsaglam/packlist/internal/model"
)

// Engine holds entries in insertion order plus the active sort mode.
type Engine struct {
	entries  []model.Entry
	mode     model.SortMode
	lastID   model.ID
	collator *collate.Collator
	log      zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes command logging to l.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l.With().Str("component", "engine").Logger() }
}

// WithSortMode sets the initial sort mode. Invalid modes are ignored.
func WithSortMode(m model.SortMode) Option {
	return func(e *Engine) {
		if m.Valid() {
			e.mode = m
		}
	}
}

// WithLanguage selects the collation used for description ordering.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) { e.collator = collate.New(tag) }
}

// New returns an empty list sorted by input order.
func New(opts ...Option) *Engine {
	e := &Engine{
		mode:     model.SortInput,
		collator: collate.New(language.English),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddItem appends a new unpacked entry and returns it.
// The description is trimmed; a blank description or a quantity outside
// model.MinQuantity..model.MaxQuantity is rejected and the list is left as is.
func (e *Engine) AddItem(description string, quantity int) (model.Entry, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return model.Entry{}, model.ErrEmptyDescription
	}
	if quantity < model.MinQuantity || quantity > model.MaxQuantity {
		return model.Entry{}, fmt.Errorf("%w: %d (want %d-%d)",
			model.ErrInvalidQuantity, quantity, model.MinQuantity, model.MaxQuantity)
	}

	e.lastID++
	it := model.Entry{
		ID:          e.lastID,
		Description: description,
		Quantity:    quantity,
	}
	e.entries = append(e.entries, it)
	e.log.Debug().Stringer("id", it.ID).Int("quantity", quantity).Msg("item added")
	return it, nil
}

// DeleteItem removes the entry with the given id. Unknown ids are ignored.
func (e *Engine) DeleteItem(id model.ID) {
	i := e.index(id)
	if i < 0 {
		return
	}
	e.entries = slices.Delete(e.entries, i, i+1)
	e.log.Debug().Stringer("id", id).Msg("item deleted")
}

// ToggleItemPacked flips the packed flag of one entry. Unknown ids are ignored.
func (e *Engine) ToggleItemPacked(id model.ID) {
	i := e.index(id)
	if i < 0 {
		return
	}
	e.entries[i].Packed = !e.entries[i].Packed
	e.log.Debug().Stringer("id", id).Bool("packed", e.entries[i].Packed).Msg("item toggled")
}

// ClearList drops every entry. Ids handed out before stay retired.
func (e *Engine) ClearList() {
	n := len(e.entries)
	e.entries = nil
	e.log.Debug().Int("removed", n).Msg("list cleared")
}

// SetSortMode changes which ordering View produces.
func (e *Engine) SetSortMode(m model.SortMode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", model.ErrUnknownSortMode, int(m))
	}
	e.mode = m
	e.log.Debug().Stringer("mode", m).Msg("sort mode changed")
	return nil
}

// SortMode returns the active sort mode.
func (e *Engine) SortMode() model.SortMode { return e.mode }

// Len returns the number of entries.
func (e *Engine) Len() int { return len(e.entries) }

// Get returns the entry with the given id.
func (e *Engine) Get(id model.ID) (model.Entry, bool) {
	i := e.index(id)
	if i < 0 {
		return model.Entry{}, false
	}
	return e.entries[i], true
}

func (e *Engine) index(id model.ID) int {
	return slices.IndexFunc(e.entries, func(it model.Entry) bool { return it.ID == id })
}
