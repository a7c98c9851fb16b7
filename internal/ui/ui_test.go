package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/packlist/internal/model"
)

func TestSummaryMessage(t *testing.T) {
	tests := []struct {
		name string
		in   model.Summary
		want string
	}{
		{"empty", model.Summary{Empty: true}, EmptyMessage},
		{"complete", model.Summary{Total: 2, Packed: 2, Percent: 100}, CompleteMessage},
		{"partial", model.Summary{Total: 2, Packed: 1, Percent: 50},
			"You have 2 items on your list, and you already packed 1 (50%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummaryMessage(tt.in))
		})
	}
}

func TestEntryLineMono(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	assert.Equal(t, " 1. [ ] 3 Socks", EntryLine(1, model.Entry{Description: "Socks", Quantity: 3}))
	assert.Equal(t, " 2. [x] 1 Passport", EntryLine(2, model.Entry{Description: "Passport", Quantity: 1, Packed: true}))
}

func TestPanelPadsToWidestLine(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "abcd"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"+------+",
		"| ab   |",
		"| abcd |",
		"+------+",
	}, lines)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 50, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 0, 1))
}

func TestFailWritesThemeGlyph(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Fail(&buf, "nope")
	OK(&buf, "fine")
	assert.Equal(t, "! nope\nx fine\n", buf.String())
}
