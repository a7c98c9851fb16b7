package engine_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/idilsaglam/packlist/internal/engine"
	"github.com/idilsaglam/packlist/internal/model"
)

func descriptions(entries []model.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, it := range entries {
		out = append(out, it.Description)
	}
	return out
}

func mustAdd(t *testing.T, e *engine.Engine, desc string, qty int) model.Entry {
	t.Helper()
	it, err := e.AddItem(desc, qty)
	require.NoError(t, err)
	return it
}

// socksAndPassport builds the two-entry list most scenarios start from.
func socksAndPassport(t *testing.T) (*engine.Engine, model.Entry, model.Entry) {
	t.Helper()
	e := engine.New()
	socks := mustAdd(t, e, "Socks", 3)
	passport := mustAdd(t, e, "Passport", 1)
	return e, socks, passport
}

func TestNewEngineIsEmpty(t *testing.T) {
	e := engine.New()

	assert.Equal(t, 0, e.Len())
	assert.Equal(t, model.SortInput, e.SortMode())
	assert.Empty(t, e.View())
	assert.NotNil(t, e.View())
	assert.True(t, e.Summary().Empty)
}

func TestAddItem(t *testing.T) {
	e := engine.New()

	it, err := e.AddItem("  Sunscreen  ", 2)
	require.NoError(t, err)
	assert.Equal(t, "Sunscreen", it.Description)
	assert.Equal(t, 2, it.Quantity)
	assert.False(t, it.Packed)

	got, ok := e.Get(it.ID)
	require.True(t, ok)
	assert.Equal(t, it, got)
}

func TestAddItemRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		desc    string
		qty     int
		wantErr error
	}{
		{"empty description", "", 1, model.ErrEmptyDescription},
		{"blank description", " \t ", 1, model.ErrEmptyDescription},
		{"zero quantity", "Hat", 0, model.ErrInvalidQuantity},
		{"negative quantity", "Hat", -4, model.ErrInvalidQuantity},
		{"quantity above range", "Hat", model.MaxQuantity + 1, model.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine.New()
			mustAdd(t, e, "Socks", 1)

			_, err := e.AddItem(tt.desc, tt.qty)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []string{"Socks"}, descriptions(e.View()))
		})
	}
}

func TestAddItemQuantityBounds(t *testing.T) {
	e := engine.New()

	_, err := e.AddItem("Pen", model.MinQuantity)
	assert.NoError(t, err)
	_, err = e.AddItem("Pencil", model.MaxQuantity)
	assert.NoError(t, err)
}

func TestIDsAreUniqueAndNeverReused(t *testing.T) {
	e := engine.New()
	seen := map[model.ID]bool{}

	for i := 0; i < 50; i++ {
		it := mustAdd(t, e, "thing", 1)
		assert.False(t, seen[it.ID], "id %v handed out twice", it.ID)
		seen[it.ID] = true
		if i%3 == 0 {
			e.DeleteItem(it.ID)
		}
	}
	e.ClearList()

	it := mustAdd(t, e, "after clear", 1)
	assert.False(t, seen[it.ID], "id %v reused after clear", it.ID)
}

func TestDeleteItem(t *testing.T) {
	e, socks, passport := socksAndPassport(t)

	e.DeleteItem(socks.ID)
	assert.Equal(t, []string{"Passport"}, descriptions(e.View()))

	_, ok := e.Get(socks.ID)
	assert.False(t, ok)
	_, ok = e.Get(passport.ID)
	assert.True(t, ok)
}

func TestDeleteItemIsIdempotent(t *testing.T) {
	once, socks, _ := socksAndPassport(t)
	once.DeleteItem(socks.ID)

	twice, socks2, _ := socksAndPassport(t)
	twice.DeleteItem(socks2.ID)
	twice.DeleteItem(socks2.ID)

	assert.Equal(t, once.View(), twice.View())
}

func TestUnknownIDIsNoop(t *testing.T) {
	e, _, _ := socksAndPassport(t)
	before := e.View()

	e.DeleteItem(model.ID(999))
	e.ToggleItemPacked(model.ID(999))

	assert.Equal(t, before, e.View())
}

func TestToggleItemPacked(t *testing.T) {
	e, socks, passport := socksAndPassport(t)

	e.ToggleItemPacked(passport.ID)

	got, _ := e.Get(passport.ID)
	assert.True(t, got.Packed)
	assert.Equal(t, passport.Description, got.Description)
	assert.Equal(t, passport.Quantity, got.Quantity)

	other, _ := e.Get(socks.ID)
	assert.Equal(t, socks, other)

	e.ToggleItemPacked(passport.ID)
	got, _ = e.Get(passport.ID)
	assert.False(t, got.Packed)
}

func TestSetSortModeRejectsUnknown(t *testing.T) {
	e := engine.New()
	require.NoError(t, e.SetSortMode(model.SortPacked))

	err := e.SetSortMode(model.SortMode(42))
	assert.ErrorIs(t, err, model.ErrUnknownSortMode)
	assert.Equal(t, model.SortPacked, e.SortMode())
}

func TestWithSortMode(t *testing.T) {
	assert.Equal(t, model.SortDescription, engine.New(engine.WithSortMode(model.SortDescription)).SortMode())
	assert.Equal(t, model.SortInput, engine.New(engine.WithSortMode(model.SortMode(-1))).SortMode())
}

func TestWithLoggerRecordsCommands(t *testing.T) {
	var buf bytes.Buffer
	e := engine.New(engine.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	mustAdd(t, e, "Socks", 3)
	e.ClearList()

	assert.Contains(t, buf.String(), `"message":"item added"`)
	assert.Contains(t, buf.String(), `"component":"engine"`)
	assert.Contains(t, buf.String(), `"message":"list cleared"`)
}

func TestWithLanguage(t *testing.T) {
	e := engine.New(engine.WithLanguage(language.Swedish))
	mustAdd(t, e, "ö", 1)
	mustAdd(t, e, "z", 1)
	require.NoError(t, e.SetSortMode(model.SortDescription))

	// Swedish collates ö after z.
	assert.Equal(t, []string{"z", "ö"}, descriptions(e.View()))
}
