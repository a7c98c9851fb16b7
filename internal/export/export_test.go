package export_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/packlist/internal/engine"
	"github.com/idilsaglam/packlist/internal/export"
	"github.com/idilsaglam/packlist/internal/model"
)

func TestWrite(t *testing.T) {
	e := engine.New()
	socks, err := e.AddItem("Socks", 3)
	require.NoError(t, err)
	e.ToggleItemPacked(socks.ID)

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, e.SortMode(), e.View(), e.Summary()))

	var got export.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "input", got.Sort)
	assert.Equal(t, e.View(), got.Items)
	assert.Equal(t, model.Summary{Total: 1, Packed: 1, Percent: 100}, got.Summary)
}

func TestWriteEmptyListUsesArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, model.SortPacked, nil, model.Summary{Empty: true}))

	assert.Contains(t, buf.String(), `"items": []`)
	assert.Contains(t, buf.String(), `"sort": "packed"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePropagatesWriterError(t *testing.T) {
	err := export.Write(failingWriter{}, model.SortInput, nil, model.Summary{Empty: true})
	assert.ErrorContains(t, err, "disk full")
}
